package progression

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprEnv exposes the evaluation context to expr programs. Helper methods are
// callable from condition source, e.g.
//
//	Resource("gold") >= 100 && HasEntity("facility", "forge")
type exprEnv struct {
	ctx EvalContext
}

func (e exprEnv) Resource(resourceType string) float64 {
	return e.ctx.Resource(resourceType)
}

func (e exprEnv) Fame() float64 {
	return e.ctx.Resource(ResourceFame)
}

func (e exprEnv) HasEntity(entityType, target string) bool {
	_, found := e.ctx.findEntity(entityType, target)
	return found
}

func (e exprEnv) EntityTier(entityType, target string) float64 {
	ent, found := e.ctx.findEntity(entityType, target)
	if !found {
		return 0
	}
	return float64(entityTier(ent))
}

// exprPrograms memoizes compiled condition source. Catalogue conditions are
// few and static, so the cache only ever grows to the catalogue size.
var exprPrograms sync.Map // source string -> *vm.Program

func compileExpr(source string) (*vm.Program, error) {
	if cached, ok := exprPrograms.Load(source); ok {
		return cached.(*vm.Program), nil
	}
	program, err := expr.Compile(source, expr.Env(exprEnv{}), expr.AsBool())
	if err != nil {
		return nil, err
	}
	exprPrograms.Store(source, program)
	return program, nil
}

// evalExpr evaluates an expression condition. Compile and run errors degrade
// to an unsatisfied result carrying the error text; they never propagate.
func evalExpr(c Condition, ctx EvalContext) ConditionResult {
	source := c.stringParam("source")
	if source == "" {
		return ConditionResult{
			Condition: c,
			Satisfied: false,
			Reason:    "Expression condition has no source",
			Progress:  progressOf(0),
		}
	}

	program, err := compileExpr(source)
	if err != nil {
		return ConditionResult{
			Condition: c,
			Satisfied: false,
			Reason:    fmt.Sprintf("Invalid expression: %v", err),
			Progress:  progressOf(0),
		}
	}

	out, err := vm.Run(program, exprEnv{ctx: ctx})
	if err != nil {
		return ConditionResult{
			Condition: c,
			Satisfied: false,
			Reason:    fmt.Sprintf("Expression error: %v", err),
			Progress:  progressOf(0),
		}
	}

	satisfied, _ := out.(bool)
	result := ConditionResult{Condition: c, Satisfied: satisfied}
	if satisfied {
		result.Progress = progressOf(1)
	} else {
		result.Progress = progressOf(0)
		result.Reason = fmt.Sprintf("Expression not satisfied: %s", source)
	}
	return result
}
