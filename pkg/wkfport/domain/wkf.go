package domain

import (
	"database/sql"
	"strconv"
)

// DisplayType is the select value controlling how a workflow renders its states.
type DisplayType int

const (
	DisplayTypeBar    DisplayType = 0
	DisplayTypeStatus DisplayType = 1
)

func (d DisplayType) String() string { return strconv.Itoa(int(d)) }

// AlertType is the select value of the alert shown before a transition runs.
type AlertType int

const (
	AlertTypeNone    AlertType = 0
	AlertTypeInfo    AlertType = 1
	AlertTypeWarning AlertType = 2
	AlertTypeError   AlertType = 3
)

func (a AlertType) String() string { return strconv.Itoa(int(a)) }

// Wkf is a workflow bound to a target model, owning its nodes and transitions.
type Wkf struct {
	ID          int64
	Name        string
	Model       string
	IsJson      bool           // Model names a dynamic (json) model
	JsonField   sql.NullString // attribute of the dynamic model holding the state
	StatusField *MetaJsonField
	DisplayType DisplayType
	BpmnXml     string
	AppBuilder  *AppBuilder
	Description string
	Nodes       []WkfNode
	Transitions []WkfTransition
}

// WkfNode is a state of a workflow. Name is unique within its workflow only.
type WkfNode struct {
	ID        int64
	WkfName   string
	Name      string
	Title     string
	XmlID     string
	MetaField *MetaField
	Sequence  int
	StartNode bool
	EndNode   bool
	Actions   []MetaAction
}

// WkfTransition links two nodes of the same workflow.
type WkfTransition struct {
	ID          int64
	WkfName     string
	Name        string
	XmlID       string
	IsButton    bool
	ButtonTitle sql.NullString
	Source      string // source node name
	Target      string // target node name
	AlertType   AlertType
	AlertMsg    sql.NullString
	SuccessMsg  sql.NullString
}
