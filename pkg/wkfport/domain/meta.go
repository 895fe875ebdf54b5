package domain

// MetaModel is a statically compiled model.
type MetaModel struct {
	ID       int64
	Name     string
	FullName string
}

// MetaField is a field declared by a static model.
type MetaField struct {
	ID        int64
	Name      string
	ModelName string
}

// MetaJsonModel is a model defined at runtime. IsReal is set once it has been
// materialized into a concrete model.
type MetaJsonModel struct {
	ID     int64
	Name   string
	IsReal bool
}

// MetaJsonField is a field usable as workflow status. Model holds the owning
// static model name; JsonModel the owning dynamic model, when there is one.
type MetaJsonField struct {
	ID        int64
	Name      string
	Model     string
	JsonModel string
}

type MetaAction struct {
	ID   int64
	Name string
}

type AppBuilder struct {
	ID   int64
	Code string
}
