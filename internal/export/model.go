package export

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/RealZimboGuy/wkfport/pkg/wkfport/domain"
)

// TargetModel is the closed set of model kinds a workflow can govern:
// StaticModel, DynamicVirtualModel or DynamicPromotedModel.
type TargetModel interface {
	// Declared is the model name as stored on the workflow.
	Declared() string
	targetModel()
}

// StaticModel is a compiled model, addressable by name everywhere.
type StaticModel struct {
	Name string
}

// DynamicVirtualModel is a runtime model whose records keep their state in a json attribute.
type DynamicVirtualModel struct {
	Name string
}

// DynamicPromotedModel is a runtime model materialized into a concrete model
// of the destination module.
type DynamicPromotedModel struct {
	Name          string
	QualifiedName string
}

func (m StaticModel) Declared() string          { return m.Name }
func (m DynamicVirtualModel) Declared() string  { return m.Name }
func (m DynamicPromotedModel) Declared() string { return m.Name }

func (StaticModel) targetModel()          {}
func (DynamicVirtualModel) targetModel()  {}
func (DynamicPromotedModel) targetModel() {}

// JsonModelRepo looks up dynamic models. A missing model is (nil, nil).
type JsonModelRepo interface {
	FindByName(ctx context.Context, name string) (*domain.MetaJsonModel, error)
}

// ModelResolver decides which model identifier a workflow row carries.
type ModelResolver struct {
	JsonModelRepo JsonModelRepo
	ModelPackage  string
}

// NewModelResolver qualifies promoted models under modelPackage.
func NewModelResolver(repo JsonModelRepo, modelPackage string) *ModelResolver {
	return &ModelResolver{JsonModelRepo: repo, ModelPackage: modelPackage}
}

// Classify maps the workflow target onto a TargetModel. Store failures are
// returned; an unknown or virtual dynamic model is not a failure.
func (r *ModelResolver) Classify(ctx context.Context, wkf *domain.Wkf, moduleName string) (TargetModel, error) {
	if !wkf.IsJson {
		return StaticModel{Name: wkf.Model}, nil
	}
	jsonModel, err := r.JsonModelRepo.FindByName(ctx, wkf.Model)
	if err != nil {
		return nil, fmt.Errorf("find json model %q: %w", wkf.Model, err)
	}
	if jsonModel == nil || !jsonModel.IsReal {
		return DynamicVirtualModel{Name: wkf.Model}, nil
	}
	return DynamicPromotedModel{
		Name:          wkf.Model,
		QualifiedName: ModelFullName(r.ModelPackage, moduleName, jsonModel.Name),
	}, nil
}

// Resolve returns the model identifier to export and the isJson flag. isJson
// holds only while the target stays an attribute bag under its own name.
func Resolve(target TargetModel) (model string, isJson bool) {
	switch m := target.(type) {
	case DynamicVirtualModel:
		return m.Name, true
	case DynamicPromotedModel:
		return m.QualifiedName, m.QualifiedName == m.Name
	default:
		return target.Declared(), false
	}
}

// ModelFullName is the name a promoted model takes in moduleName:
// <modelPackage>.<module segments>.db.<name>.
func ModelFullName(modelPackage, moduleName, name string) string {
	segments := strings.FieldsFunc(strings.ToLower(moduleName), func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})
	parts := make([]string, 0, len(segments)+3)
	if modelPackage != "" {
		parts = append(parts, modelPackage)
	}
	parts = append(parts, segments...)
	parts = append(parts, "db", name)
	return strings.Join(parts, ".")
}

// ModulePrefix is prepended to every file of the module's package.
func ModulePrefix(moduleName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(moduleName) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	b.WriteRune('_')
	return b.String()
}
