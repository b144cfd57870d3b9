package grpc

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/ghcard/internal/app"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/structpb"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Request field names.
const (
	fieldUsername       = "username"
	fieldShowName       = "show_name"
	fieldStats          = "stats"
	fieldLanguages      = "languages"
	fieldStreak         = "streak"
	fieldActivity       = "activity"
	fieldIncludePrivate = "include_private"
	fieldFullWidth      = "full_width"
	fieldAccent         = "accent"
)

// NewStatsRequest creates Stats request for given login.
func NewStatsRequest(login string) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			fieldUsername: structpb.NewStringValue(login),
		},
	}
}

// NewCardRequest creates Card request for given login and render options.
func NewCardRequest(login string, opts app.RenderOptions) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			fieldUsername:       structpb.NewStringValue(login),
			fieldShowName:       structpb.NewBoolValue(opts.ShowName),
			fieldStats:          structpb.NewBoolValue(opts.ShowStats),
			fieldLanguages:      structpb.NewBoolValue(opts.ShowLanguages),
			fieldStreak:         structpb.NewBoolValue(opts.ShowStreak),
			fieldActivity:       structpb.NewBoolValue(opts.ShowActivity),
			fieldIncludePrivate: structpb.NewBoolValue(opts.IncludePrivate),
			fieldFullWidth:      structpb.NewBoolValue(opts.FullWidth),
			fieldAccent:         structpb.NewStringValue(opts.Accent),
		},
	}
}

func parseLogin(r *structpb.Struct) (string, error) {
	v, ok := r.GetFields()[fieldUsername]
	if !ok {
		return "", app.InvalidRequestError("missing username")
	}
	if _, ok := v.GetKind().(*structpb.Value_StringValue); !ok {
		return "", app.InvalidRequestError("username must be a string")
	}

	return v.GetStringValue(), nil
}

// parseRenderOptions reads options from request. Missing flags get the same defaults as http query params.
func parseRenderOptions(r *structpb.Struct) (app.RenderOptions, error) {
	fields := r.GetFields()

	boolField := func(name string, defaultValue bool) (bool, error) {
		v, ok := fields[name]
		if !ok {
			return defaultValue, nil
		}
		if _, ok := v.GetKind().(*structpb.Value_BoolValue); !ok {
			return false, app.InvalidRequestError(name + " must be a bool")
		}
		return v.GetBoolValue(), nil
	}

	opts := app.DefaultRenderOptions()
	var err error
	for _, f := range []struct {
		name  string
		value *bool
	}{
		{fieldShowName, &opts.ShowName},
		{fieldStats, &opts.ShowStats},
		{fieldLanguages, &opts.ShowLanguages},
		{fieldStreak, &opts.ShowStreak},
		{fieldActivity, &opts.ShowActivity},
		{fieldIncludePrivate, &opts.IncludePrivate},
		{fieldFullWidth, &opts.FullWidth},
	} {
		if *f.value, err = boolField(f.name, *f.value); err != nil {
			return app.RenderOptions{}, err
		}
	}

	if v, ok := fields[fieldAccent]; ok {
		opts.Accent = v.GetStringValue()
	}

	return opts, nil
}

// statsToStruct converts stats to generic struct, using stats json field names.
func statsToStruct(stats *app.AggregatedStats) (*structpb.Struct, error) {
	data, err := json.Marshal(stats)
	if err != nil {
		return nil, errors.Wrap(err, "marshalling stats")
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "unmarshalling stats")
	}

	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrap(err, "creating struct")
	}

	return s, nil
}
