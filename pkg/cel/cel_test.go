package cel

import (
	"regexp"
	"testing"

	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/go-cmp/cmp"
	pipelinev1beta1 "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1beta1"
)

const testRepository = "psql_public_cst"

func TestExpressionEvaluation(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		fixture interface{}
		want    ref.Val
	}{
		{
			name: "simple body value",
			expr: "context.current.digest",
			fixture: map[string]interface{}{
				"current": map[string]string{
					"digest": "testing",
				},
			},
			want: types.String("testing"),
		},
		{
			name:    "repository",
			expr:    "repository",
			fixture: map[string]interface{}{},
			want:    types.String(testRepository),
		},
		{
			name: "comparison",
			expr: "context.change == 'Significant'",
			fixture: map[string]interface{}{
				"change": "Significant",
			},
			want: types.True,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(rt *testing.T) {
			env, err := makeCelEnv()
			if err != nil {
				rt.Errorf("failed to make env: %s", err)
				return
			}
			ectx, err := makeEvalContext(testRepository, tt.fixture)
			if err != nil {
				rt.Errorf("failed to make eval context %s", err)
				return
			}
			got, err := evaluate(tt.expr, env, ectx)
			if err != nil {
				rt.Errorf("evaluate() got an error %s", err)
				return
			}
			_, ok := got.(*types.Err)
			if ok {
				rt.Errorf("error evaluating expression: %s", got)
				return
			}

			if !got.Equal(tt.want).(types.Bool) {
				rt.Errorf("evaluate() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestExpressionEvaluation_Error(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{
			name: "unknown value",
			expr: "context.Unknown",
			want: "no such key: Unknown",
		},
		{
			name: "invalid syntax",
			expr: "body.value = 'testing'",
			want: "Syntax error: token recognition error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(rt *testing.T) {
			env, err := makeCelEnv()
			if err != nil {
				rt.Errorf("failed to make env: %s", err)
				return
			}
			ectx, err := makeEvalContext(testRepository, map[string]string{"this": "tests"})
			if err != nil {
				rt.Errorf("failed to make eval context %s", err)
				return
			}
			_, err = evaluate(tt.expr, env, ectx)
			if !matchError(t, tt.want, err) {
				rt.Errorf("evaluate() got %s, wanted %s", err, tt.want)
			}
		})
	}
}

func TestContextEvaluateToParamValue(t *testing.T) {
	v := map[string]interface{}{
		"current": map[string]interface{}{
			"versions": []map[string]string{
				{"pundle": "Glorp", "version": "4"},
				{"pundle": "Store-Base", "version": "12"},
			},
		},
		"changes": []interface{}{},
	}

	ctx, err := New(testRepository, v)
	if err != nil {
		t.Fatal(err)
	}

	paramTests := []struct {
		expr string
		want pipelinev1beta1.ArrayOrString
	}{
		{
			"context.current.versions.map(s, s['pundle'])",
			pipelinev1beta1.ArrayOrString{
				Type:     pipelinev1beta1.ParamTypeArray,
				ArrayVal: []string{"Glorp", "Store-Base"},
			},
		},
		{
			"context.current.versions[0].version",
			pipelinev1beta1.ArrayOrString{Type: pipelinev1beta1.ParamTypeString, StringVal: "4"},
		},
		{
			"size(context.current.versions)",
			pipelinev1beta1.ArrayOrString{Type: pipelinev1beta1.ParamTypeString, StringVal: "2"},
		},
		{
			"size(context.changes) == 0",
			pipelinev1beta1.ArrayOrString{Type: pipelinev1beta1.ParamTypeString, StringVal: "true"},
		},
		{
			"context.changes.map(c, c['pundle'])",
			pipelinev1beta1.ArrayOrString{Type: pipelinev1beta1.ParamTypeArray, ArrayVal: []string{}},
		},
	}
	for _, tt := range paramTests {
		result, err := ctx.EvaluateToParamValue(tt.expr)
		if err != nil {
			t.Fatalf("%s: %s", tt.expr, err)
		}
		if diff := cmp.Diff(tt.want, result); diff != "" {
			t.Fatalf("%s: got an incorrect value:\n%s", tt.expr, diff)
		}
	}
}

func TestContextEvaluateToParamValue_UnknownType(t *testing.T) {
	ctx, err := New(testRepository, map[string]interface{}{"current": map[string]interface{}{}})
	if err != nil {
		t.Fatal(err)
	}

	_, err = ctx.EvaluateToParamValue("context.current")
	if !matchError(t, "unknown result type", err) {
		t.Fatal(err)
	}
}

func matchError(t *testing.T, s string, e error) bool {
	t.Helper()
	if e == nil {
		return false
	}
	match, err := regexp.MatchString(s, e.Error())
	if err != nil {
		t.Fatal(err)
	}
	return match
}
