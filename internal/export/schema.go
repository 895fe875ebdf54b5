package export

import "strconv"

// SchemaVersion identifies the column layout below. Any change to a header
// or to the meaning of a cell requires a new version.
const SchemaVersion = 1

// Entity kinds, used in file names and descriptor types.
const (
	KindWkf           = "Wkf"
	KindWkfNode       = "WkfNode"
	KindWkfTransition = "WkfTransition"
)

const typePackage = "com.axelor.studio.db."

var (
	WkfHeader = []string{
		"name",
		"model",
		"jsonField",
		"isJson",
		"status",
		"displayTypeSelect",
		"bpmnXml",
		"appBuilder.code",
		"description",
	}

	WkfNodeHeader = []string{
		"name",
		"title",
		"xmlId",
		"wkf",
		"field",
		"fieldModel",
		"sequence",
		"startNode",
		"endNode",
		"actions",
	}

	WkfTransitionHeader = []string{
		"name",
		"xmlId",
		"isButton",
		"buttonTitle",
		"wkf",
		"sourceNode",
		"targetNode",
		"alertTypeSelect",
		"alertMsg",
		"successMsg",
	}
)

// WkfRow is one line of the workflow file.
type WkfRow struct {
	Name        string
	Model       string
	JsonField   string
	IsJson      bool
	Status      string
	DisplayType string
	BpmnXml     string
	AppBuilder  string
	Description string
}

func (r WkfRow) Cells() []string {
	return []string{
		r.Name,
		r.Model,
		r.JsonField,
		strconv.FormatBool(r.IsJson),
		r.Status,
		r.DisplayType,
		r.BpmnXml,
		r.AppBuilder,
		r.Description,
	}
}

// WkfNodeRow is one line of the node file. Wkf scopes Name.
type WkfNodeRow struct {
	Name       string
	Title      string
	XmlID      string
	Wkf        string
	Field      string
	FieldModel string
	Sequence   int
	StartNode  bool
	EndNode    bool
	Actions    []string
}

func (r WkfNodeRow) Cells() []string {
	return []string{
		r.Name,
		r.Title,
		r.XmlID,
		r.Wkf,
		r.Field,
		r.FieldModel,
		strconv.Itoa(r.Sequence),
		strconv.FormatBool(r.StartNode),
		strconv.FormatBool(r.EndNode),
		JoinNames(r.Actions),
	}
}

// WkfTransitionRow is one line of the transition file. Wkf scopes Name,
// SourceNode and TargetNode.
type WkfTransitionRow struct {
	Name        string
	XmlID       string
	IsButton    bool
	ButtonTitle string
	Wkf         string
	SourceNode  string
	TargetNode  string
	AlertType   string
	AlertMsg    string
	SuccessMsg  string
}

func (r WkfTransitionRow) Cells() []string {
	return []string{
		r.Name,
		r.XmlID,
		strconv.FormatBool(r.IsButton),
		r.ButtonTitle,
		r.Wkf,
		r.SourceNode,
		r.TargetNode,
		r.AlertType,
		r.AlertMsg,
		r.SuccessMsg,
	}
}

type record interface {
	Cells() []string
}

func cells[R record](rows []R) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Cells())
	}
	return out
}
