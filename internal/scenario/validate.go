package scenario

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/rshade/fleetcarbon/internal/carbon"
	"github.com/rshade/fleetcarbon/internal/target"
)

// strictTag holds the rules applied only in strict mode.
const strictTag = "strict"

var (
	structuralValidator *validator.Validate //nolint:gochecknoglobals // Built once, reused
	strictValidator     *validator.Validate //nolint:gochecknoglobals // Built once, reused
	validatorsOnce      sync.Once           //nolint:gochecknoglobals // Guards the validators
)

func initValidators() {
	structuralValidator = validator.New()
	mustRegister(structuralValidator, "kyotogas", func(fl validator.FieldLevel) bool {
		_, err := carbon.ParseGas(fl.Field().String())
		return err == nil
	})
	mustRegister(structuralValidator, "uniquegas", uniqueGasSymbols)
	mustRegister(structuralValidator, "scope", func(fl validator.FieldLevel) bool {
		_, err := carbon.ParseScope(fl.Field().String())
		return err == nil
	})
	mustRegister(structuralValidator, "period", func(fl validator.FieldLevel) bool {
		_, err := target.ParsePeriod(fl.Field().String())
		return err == nil
	})
	mustRegister(structuralValidator, "gwppreset", func(fl validator.FieldLevel) bool {
		_, ok := GWPPreset(fl.Field().String())
		return ok
	})
	structuralValidator.RegisterStructValidation(validateTargetWindow, TargetSpec{})

	strictValidator = validator.New()
	strictValidator.SetTagName(strictTag)
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// uniqueGasSymbols fails a gas-keyed map holding two symbols for the same
// gas, such as "CO2" and "co2". Unknown symbols are left to kyotogas.
func uniqueGasSymbols(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Map {
		return false
	}
	var seen [carbon.NumGases]bool
	iter := field.MapRange()
	for iter.Next() {
		gas, err := carbon.ParseGas(iter.Key().String())
		if err != nil {
			continue
		}
		if seen[gas] {
			return false
		}
		seen[gas] = true
	}
	return true
}

// validateTargetWindow requires both window bounds and start before end.
func validateTargetWindow(sl validator.StructLevel) {
	spec, ok := sl.Current().Interface().(TargetSpec)
	if !ok {
		return
	}
	if spec.Start.IsZero() {
		sl.ReportError(spec.Start, "start", "Start", "required", "")
	}
	if spec.End.IsZero() {
		sl.ReportError(spec.End, "end", "End", "required", "")
	}
	if !spec.Start.IsZero() && !spec.End.IsZero() && !spec.Start.Time.Before(spec.End.Time) {
		sl.ReportError(spec.End, "end", "End", "gtfield", "Start")
	}
}

// Validate checks doc and returns a *ValidationError listing every problem.
//
// Structural rules always apply: vehicle ids and target names present and
// unique, known gas symbols with no gas named twice, scopes, periods and GWP presets, and target
// windows with start before end. In strict mode negative distances,
// intensities, quantities, factors, GWP values and target values are also
// rejected. The engine itself accepts any finite input.
func Validate(doc *Document, strict bool) error {
	validatorsOnce.Do(initValidators)

	var issues []string
	issues = appendIssues(issues, structuralValidator.Struct(doc))
	if strict {
		issues = appendIssues(issues, strictValidator.Struct(doc))
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func appendIssues(issues []string, err error) []string {
	if err == nil {
		return issues
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return append(issues, err.Error())
	}

	for _, fe := range fieldErrs {
		issues = append(issues, describeFieldError(fe))
	}
	return issues
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "unique":
		return fmt.Sprintf("%s must have unique %s values", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s (got %v)", field, fe.Param(), fe.Value())
	case "gtfield":
		return fmt.Sprintf("%s must be after %s", field, fe.Param())
	case "kyotogas":
		return fmt.Sprintf("%s: unknown gas %q", field, fe.Value())
	case "uniquegas":
		return field + " names the same gas more than once"
	case "scope":
		return fmt.Sprintf("%s: unknown scope %q", field, fe.Value())
	case "period":
		return fmt.Sprintf("%s: unknown period %q", field, fe.Value())
	case "gwppreset":
		return fmt.Sprintf("%s: unknown GWP preset %q", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
