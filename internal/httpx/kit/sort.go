package kit

import (
	"strings"

	"sdg-innovation-api/ent"
	"sdg-innovation-api/ent/project"

	"github.com/samber/lo"
)

type projectSortApplier struct {
	Asc  func(*ent.ProjectQuery) *ent.ProjectQuery
	Desc func(*ent.ProjectQuery) *ent.ProjectQuery
}

// ProjectSortWhitelist defines allowed sort fields and their query modifiers for projects
var ProjectSortWhitelist = map[string]projectSortApplier{
	"created_at": {Asc: func(q *ent.ProjectQuery) *ent.ProjectQuery { return q.Order(ent.Asc(project.FieldCreatedAt)) }, Desc: func(q *ent.ProjectQuery) *ent.ProjectQuery { return q.Order(ent.Desc(project.FieldCreatedAt)) }},
	"updated_at": {Asc: func(q *ent.ProjectQuery) *ent.ProjectQuery { return q.Order(ent.Asc(project.FieldUpdatedAt)) }, Desc: func(q *ent.ProjectQuery) *ent.ProjectQuery { return q.Order(ent.Desc(project.FieldUpdatedAt)) }},
	"title":      {Asc: func(q *ent.ProjectQuery) *ent.ProjectQuery { return q.Order(ent.Asc(project.FieldTitle)) }, Desc: func(q *ent.ProjectQuery) *ent.ProjectQuery { return q.Order(ent.Desc(project.FieldTitle)) }},
	"id":         {Asc: func(q *ent.ProjectQuery) *ent.ProjectQuery { return q.Order(ent.Asc(project.FieldID)) }, Desc: func(q *ent.ProjectQuery) *ent.ProjectQuery { return q.Order(ent.Desc(project.FieldID)) }},
}

func parseSortSpec(spec string) (field string, asc bool, err error) {
	if spec == "" {
		return "", true, nil
	}
	parts := strings.Split(spec, ":")
	field = strings.TrimSpace(parts[0])
	dir := lo.TernaryF(len(parts) > 1,
		func() string { return strings.ToLower(strings.TrimSpace(parts[1])) },
		func() string { return "asc" },
	)
	switch dir {
	case "asc":
		asc = true
	case "desc":
		asc = false
	default:
		return "", true, BadRequest("invalid sort direction", dir)
	}
	return field, asc, nil
}

// ApplyProjectSort applies a validated sort spec to an ent ProjectQuery
func ApplyProjectSort(q *ent.ProjectQuery, s string) (*ent.ProjectQuery, error) {
	field, asc, err := parseSortSpec(s)
	if err != nil {
		return nil, err
	}
	if field == "" {
		return q, nil
	}
	ap, ok := ProjectSortWhitelist[field]
	if !ok {
		return nil, BadRequest("invalid sort field", field)
	}
	if asc {
		return ap.Asc(q), nil
	}
	return ap.Desc(q), nil
}
