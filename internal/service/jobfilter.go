package service

import (
	"encoding/json"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/asutherland/treeherder-service/internal/domain/model"
	apperrors "github.com/asutherland/treeherder-service/internal/errors"
)

// JobFilter is a compiled JMESPath expression evaluated against each
// normalized job record in a list response. A job is kept when the
// expression evaluates to a truthy value.
type JobFilter struct {
	expr jmespath.JMESPath
}

// CompileJobFilter compiles a JMESPath expression. An invalid expression
// is a validation error so the API boundary maps it to 400.
func CompileJobFilter(expression string) (*JobFilter, error) {
	expr, err := jmespath.Compile(expression)
	if err != nil {
		return nil, apperrors.Validationf("invalid filter expression: %v", err)
	}
	return &JobFilter{expr: expr}, nil
}

// Apply returns the jobs the filter matches, preserving order.
func (f *JobFilter) Apply(jobs []*model.Job) ([]*model.Job, error) {
	out := make([]*model.Job, 0, len(jobs))
	for _, job := range jobs {
		match, err := f.Match(job)
		if err != nil {
			return nil, err
		}
		if match {
			out = append(out, job)
		}
	}
	return out, nil
}

// Match evaluates the filter against a single job. The job is round
// tripped through JSON so the expression sees the wire field names.
func (f *JobFilter) Match(job *model.Job) (bool, error) {
	raw, err := json.Marshal(job)
	if err != nil {
		return false, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "marshal job %s", job.JobGUID)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return false, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "decode job %s", job.JobGUID)
	}

	result, err := f.expr.Search(doc)
	if err != nil {
		return false, apperrors.Validationf("evaluate filter expression: %v", err)
	}
	return truthy(result), nil
}

// truthy follows JMESPath semantics: false, null, empty strings and
// empty collections do not match.
func truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case []any:
		return len(value) > 0
	case map[string]any:
		return len(value) > 0
	default:
		return true
	}
}
