package intelligence

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON names so messages match the schema.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateCourse(c domain.Course) error {
	if err := validate.Struct(c); err != nil {
		return describe(err)
	}
	return nil
}

func validateCourseList(list []domain.Course) error {
	if len(list) == 0 {
		return fmt.Errorf("no courses returned")
	}
	for i, c := range list {
		if err := validateCourse(c); err != nil {
			return fmt.Errorf("course %d: %w", i+1, err)
		}
	}
	return nil
}

func validateDetails(d domain.CourseDetails) error {
	if err := validate.Struct(d); err != nil {
		return describe(err)
	}
	return domain.ValidateQuiz(d.Quiz)
}

func validateBundle(b domain.CourseBundle) error {
	if err := validateCourse(b.Course); err != nil {
		return fmt.Errorf("course: %w", err)
	}
	if err := validateDetails(b.Details); err != nil {
		return fmt.Errorf("details: %w", err)
	}
	return nil
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return fmt.Errorf("field %s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
}
