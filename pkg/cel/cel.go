package cel

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/checker/decls"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/common/types/traits"
	pipelinev1beta1 "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1beta1"
)

// Context makes it easy to execute CEL expressions on the result of a poll.
type Context struct {
	env  *cel.Env
	Data map[string]interface{}
}

// New creates and returns a Context for evaluating expressions.
//
// The context value is converted to JSON and exposed as "context", the
// repository name is exposed as "repository".
func New(repository string, context interface{}) (*Context, error) {
	env, err := makeCelEnv()
	if err != nil {
		return nil, err
	}
	ctx, err := makeEvalContext(repository, context)
	if err != nil {
		return nil, err
	}
	return &Context{
		env:  env,
		Data: ctx,
	}, nil
}

// Evaluate evaluates the provided expression and returns the result.
func (c *Context) Evaluate(expr string) (ref.Val, error) {
	return evaluate(expr, c.env, c.Data)
}

// EvaluateToParamValue evaluates the provided expression, and converts it to a
// pipeline ArrayOrString value for a PipelineRun parameter.
func (c *Context) EvaluateToParamValue(expr string) (pipelinev1beta1.ArrayOrString, error) {
	res, err := c.Evaluate(expr)
	if err != nil {
		return pipelinev1beta1.ArrayOrString{}, err
	}
	return valToParam(res)
}

func evaluate(expr string, env *cel.Env, data map[string]interface{}) (ref.Val, error) {
	parsed, issues := env.Parse(expr)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}

	checked, issues := env.Check(parsed)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}

	prg, err := env.Program(checked)
	if err != nil {
		return nil, err
	}

	out, _, err := prg.Eval(data)
	return out, err
}

func makeCelEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Declarations(
			decls.NewVar("context", decls.Dyn),
			decls.NewVar("repository", decls.String)))
}

func makeEvalContext(repository string, context interface{}) (map[string]interface{}, error) {
	m, err := contextToMap(context)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"context": m, "repository": repository}, nil
}

func contextToMap(v interface{}) (map[string]interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	err = json.Unmarshal(b, &m)
	return m, err
}

func valToParam(v ref.Val) (pipelinev1beta1.ArrayOrString, error) {
	switch val := v.(type) {
	case traits.Lister:
		items := []string{}
		it := val.Iterator()
		for it.HasNext() == types.True {
			str, err := it.Next().ConvertToNative(reflect.TypeOf(""))
			if err != nil {
				return pipelinev1beta1.ArrayOrString{}, fmt.Errorf("failed to convert expression to a string: %w", err)
			}
			items = append(items, str.(string))
		}
		if len(items) == 0 {
			return pipelinev1beta1.ArrayOrString{Type: pipelinev1beta1.ParamTypeArray, ArrayVal: items}, nil
		}
		return *pipelinev1beta1.NewArrayOrString(items[0], items[1:]...), nil
	case types.String:
		return *pipelinev1beta1.NewArrayOrString(val.Value().(string)), nil
	case types.Double:
		return *pipelinev1beta1.NewArrayOrString(fmt.Sprintf("%g", val.Value().(float64))), nil
	case types.Int:
		return *pipelinev1beta1.NewArrayOrString(fmt.Sprintf("%d", val.Value().(int64))), nil
	case types.Bool:
		return *pipelinev1beta1.NewArrayOrString(fmt.Sprintf("%t", val.Value().(bool))), nil
	}
	return pipelinev1beta1.ArrayOrString{}, fmt.Errorf("unknown result type %T, expression must evaluate to a string", v)
}
