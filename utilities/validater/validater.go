// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validater

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/BrunoReboul/runmon/utilities/str"
)

const tagKeyName = "valid"

var patterns = map[string]*regexp.Regexp{
	"isAligner":    regexp.MustCompile(`^ALIGN_[A-Z_]+$`),
	"isDuration":   regexp.MustCompile(`^[0-9]+[smhd]$`),
	"isKey":        regexp.MustCompile(`^[a-zA-Z0-9_-]+$`),
	"isLabelKey":   regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`),
	"isMetricName": regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`),
	"isPolicyName": regexp.MustCompile(`^[a-zA-Z0-9_ -]+$`),
	"isReducer":    regexp.MustCompile(`^REDUCE_[A-Z_]+$`),
}

// Matches reports whether value matches the named pattern, e.g. isDuration
// Panics on an unknown pattern name as it is a programming error
func Matches(patternName string, value string) bool {
	re, ok := patterns[patternName]
	if !ok {
		panic(fmt.Sprintf("validater unknown pattern %s", patternName))
	}
	return re.MatchString(value)
}

// PatternString returns the regular expression behind a pattern name, for error messages
func PatternString(patternName string) string {
	if re, ok := patterns[patternName]; ok {
		return re.String()
	}
	return ""
}

// validater interface
type validater interface {
	validate(interface{}) (bool, error)
}

// defaultValidater is always valid
type defaultValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v defaultValidater) validate(val interface{}) (bool, error) {
	return true, nil
}

// isNotZeroValueValidater do not accept zero value
type isNotZeroValueValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v isNotZeroValueValidater) validate(value interface{}) (bool, error) {
	reflectValue := reflect.ValueOf(value)
	kind := reflectValue.Kind()
	switch kind {
	case reflect.String, reflect.Slice, reflect.Map:
		if reflectValue.Len() == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Int64, reflect.Float64:
		if reflectValue.IsZero() {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Ptr:
		if reflectValue.IsNil() {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	default:
		return false, fmt.Errorf("Unmanaged kind by 'isNotZeroValueValidater' %s", kind)
	}
	return true, nil
}

// isOneOfValidater accepts only a value from a list
type isOneOfValidater struct {
	acceptedValueList []string
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v isOneOfValidater) validate(value interface{}) (bool, error) {
	s, ok := stringValue(value)
	if !ok {
		return false, fmt.Errorf("Should be a string")
	}
	if str.Find(v.acceptedValueList, s) {
		return true, nil
	}
	return false, fmt.Errorf("'%s' should be one of %v", s, v.acceptedValueList)
}

// patternValidater accepts only strings matching a named regular expression
type patternValidater struct {
	patternName string
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v patternValidater) validate(value interface{}) (bool, error) {
	s, ok := stringValue(value)
	if !ok {
		return false, fmt.Errorf("Should be a string")
	}
	if Matches(v.patternName, s) {
		return true, nil
	}
	return false, fmt.Errorf("'%s' should match %s", s, PatternString(v.patternName))
}

// maxLengthValidater limits the length of a string
type maxLengthValidater struct {
	maxLength int
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v maxLengthValidater) validate(value interface{}) (bool, error) {
	s, ok := stringValue(value)
	if !ok {
		return false, fmt.Errorf("Should be a string")
	}
	if len(s) > v.maxLength {
		return false, fmt.Errorf("Should NOT be longer than %d characters, is %d", v.maxLength, len(s))
	}
	return true, nil
}

// isNotNegativeValidater accepts zero and positive numbers
type isNotNegativeValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v isNotNegativeValidater) validate(value interface{}) (bool, error) {
	reflectValue := reflect.Indirect(reflect.ValueOf(value))
	switch reflectValue.Kind() {
	case reflect.Float64:
		if math.IsNaN(reflectValue.Float()) {
			return false, fmt.Errorf("Should be a number, is NaN")
		}
		if reflectValue.Float() < 0 {
			return false, fmt.Errorf("Should NOT be negative, is %v", reflectValue.Float())
		}
	case reflect.Int64:
		if reflectValue.Int() < 0 {
			return false, fmt.Errorf("Should NOT be negative, is %v", reflectValue.Int())
		}
	case reflect.Invalid:
		return false, fmt.Errorf("Should NOT be a nil pointer")
	default:
		return false, fmt.Errorf("Unmanaged kind by 'isNotNegativeValidater' %s", reflectValue.Kind())
	}
	return true, nil
}

// misconfiguredValidater reports a struct tag that cannot be interpreted
type misconfiguredValidater struct {
	tagValue string
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v misconfiguredValidater) validate(value interface{}) (bool, error) {
	return false, fmt.Errorf("Misconfigured tag %s:\"%s\"", tagKeyName, v.tagValue)
}

// emptyOrValidater accepts empty values, else delegates
type emptyOrValidater struct {
	next validater
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v emptyOrValidater) validate(value interface{}) (bool, error) {
	reflectValue := reflect.ValueOf(value)
	if !reflectValue.IsValid() || reflectValue.IsZero() {
		return true, nil
	}
	if reflectValue.Kind() == reflect.Ptr && reflectValue.Elem().IsZero() {
		return true, nil
	}
	return v.next.validate(value)
}

func stringValue(value interface{}) (string, bool) {
	switch s := value.(type) {
	case string:
		return s, true
	case *string:
		if s == nil {
			return "", true
		}
		return *s, true
	}
	return "", false
}

func getValidater(tagValue string) validater {
	tagValueParts := strings.Split(tagValue, ",")
	tagPrefix := tagValueParts[0]
	options := tagValueParts[1:]
	omitEmpty := false
	if len(options) > 0 && options[len(options)-1] == "omitempty" {
		omitEmpty = true
		options = options[:len(options)-1]
	}
	var v validater
	switch tagPrefix {
	case "":
		return defaultValidater{}
	case "isNotZeroValue":
		v = isNotZeroValueValidater{}
	case "isNotNegative":
		v = isNotNegativeValidater{}
	case "isOneOf":
		if len(options) != 1 {
			return misconfiguredValidater{tagValue: tagValue}
		}
		v = isOneOfValidater{acceptedValueList: strings.Split(options[0], "|")}
	case "maxLength":
		if len(options) != 1 {
			return misconfiguredValidater{tagValue: tagValue}
		}
		maxLength, err := strconv.Atoi(options[0])
		if err != nil {
			return misconfiguredValidater{tagValue: tagValue}
		}
		v = maxLengthValidater{maxLength: maxLength}
	default:
		if _, ok := patterns[tagPrefix]; !ok {
			return misconfiguredValidater{tagValue: tagValue}
		}
		v = patternValidater{patternName: tagPrefix}
	}
	if omitEmpty {
		return emptyOrValidater{next: v}
	}
	return v
}

// fieldName prefers the yaml name as it is the one users write
func fieldName(typeField reflect.StructField) string {
	yamlName := strings.Split(typeField.Tag.Get("yaml"), ",")[0]
	if yamlName != "" && yamlName != "-" {
		return yamlName
	}
	return typeField.Name
}

// getValidationErrors recursively loop through a struct to find validation errors
func getValidationErrors(structure interface{}, pedigree string) []error {
	errs := []error{}
	if structure == nil {
		return errs
	}
	value := reflect.ValueOf(structure)
	if value.Kind() == reflect.Interface || value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return errs
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return []error{fmt.Errorf("type %s is not a struct", value.Kind())}
	}

	for i := 0; i < value.NumField(); i++ {
		valueField := value.Field(i)
		typeField := value.Type().Field(i)
		if typeField.PkgPath != "" {
			continue
		}
		tagValue := typeField.Tag.Get(tagKeyName)
		if tagValue == "-" {
			continue
		}
		if valueField.Kind() == reflect.Interface {
			valueField = valueField.Elem()
			if !valueField.IsValid() {
				continue
			}
		}
		name := fieldName(typeField)
		switch {
		case valueField.Kind() == reflect.Struct ||
			(valueField.Kind() == reflect.Ptr && !valueField.IsNil() && valueField.Elem().Kind() == reflect.Struct):
			childErrs := getValidationErrors(valueField.Interface(), fmt.Sprintf("%s/%s", pedigree, name))
			errs = append(errs, childErrs...)
		case valueField.Kind() == reflect.Slice && typeField.Type.Elem().Kind() == reflect.Struct:
			if ok, err := getValidater(tagValue).validate(valueField.Interface()); !ok {
				errs = append(errs, fmt.Errorf("Validater error %s '%s' %v", pedigree, name, err))
			}
			for j := 0; j < valueField.Len(); j++ {
				childErrs := getValidationErrors(valueField.Index(j).Interface(), fmt.Sprintf("%s/%s[%d]", pedigree, name, j))
				errs = append(errs, childErrs...)
			}
		default:
			if ok, err := getValidater(tagValue).validate(valueField.Interface()); !ok {
				errs = append(errs, fmt.Errorf("Validater error %s '%s' %v", pedigree, name, err))
			}
		}
	}
	return errs
}

// GetViolations validates the fields of a struct and returns one message per invalid field
func GetViolations(structure interface{}, pedigree string) (violations []string) {
	for _, err := range getValidationErrors(structure, pedigree) {
		violations = append(violations, err.Error())
	}
	return violations
}
