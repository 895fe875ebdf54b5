package export

import (
	"context"
	"database/sql"

	"github.com/RealZimboGuy/wkfport/pkg/wkfport/domain"
)

type MockWkfRepo struct {
	FindAllFunc func(ctx context.Context) ([]domain.Wkf, error)
}

func (m *MockWkfRepo) FindAll(ctx context.Context) ([]domain.Wkf, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

type MockJsonModelRepo struct {
	FindByNameFunc func(ctx context.Context, name string) (*domain.MetaJsonModel, error)
}

func (m *MockJsonModelRepo) FindByName(ctx context.Context, name string) (*domain.MetaJsonModel, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

type writtenFile struct {
	header  []string
	rows    [][]string
	content []byte
}

// MemoryWriter keeps written files in memory, in write order.
type MemoryWriter struct {
	Names    []string
	Files    map[string]writtenFile
	FailOn   string
	FailWith error
}

func (m *MemoryWriter) AddCSV(name string, header []string, rows [][]string) error {
	if name == m.FailOn {
		return m.FailWith
	}
	if m.Files == nil {
		m.Files = map[string]writtenFile{}
	}
	m.Names = append(m.Names, name)
	m.Files[name] = writtenFile{header: header, rows: rows}
	return nil
}

func (m *MemoryWriter) AddFile(name string, content []byte) error {
	if name == m.FailOn {
		return m.FailWith
	}
	if m.Files == nil {
		m.Files = map[string]writtenFile{}
	}
	m.Names = append(m.Names, name)
	m.Files[name] = writtenFile{content: content}
	return nil
}

func staticRepo(wkfs ...domain.Wkf) *MockWkfRepo {
	return &MockWkfRepo{FindAllFunc: func(ctx context.Context) ([]domain.Wkf, error) {
		return wkfs, nil
	}}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// sampleWkf is W on static model M with nodes N1 (start, actions A1, A2) and
// N2 (end) linked by T1.
func sampleWkf() domain.Wkf {
	return domain.Wkf{
		ID:          1,
		Name:        "W",
		Model:       "M",
		StatusField: &domain.MetaJsonField{Name: "S", Model: "M"},
		DisplayType: domain.DisplayTypeBar,
		Nodes: []domain.WkfNode{
			{Name: "N1", Title: "Draft", XmlID: "wkf_w_n1", Sequence: 1, StartNode: true,
				Actions: []domain.MetaAction{{Name: "A1"}, {Name: "A2"}}},
			{Name: "N2", Title: "Done", XmlID: "wkf_w_n2", Sequence: 2, EndNode: true},
		},
		Transitions: []domain.WkfTransition{
			{Name: "T1", XmlID: "wkf_w_t1", Source: "N1", Target: "N2"},
		},
	}
}
