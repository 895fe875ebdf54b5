package export

import (
	"github.com/RealZimboGuy/wkfport/pkg/wkfport/domain"
)

// EncodeWkf builds the workflow row for the resolved target model.
func EncodeWkf(wkf *domain.Wkf, target TargetModel) (WkfRow, error) {
	if wkf.StatusField == nil || wkf.StatusField.Name == "" {
		return WkfRow{}, &RelationError{Kind: KindWkf, Wkf: wkf.Name, Relation: "statusField"}
	}
	model, isJson := Resolve(target)
	row := WkfRow{
		Name:        wkf.Name,
		Model:       model,
		JsonField:   wkf.JsonField.String,
		IsJson:      isJson,
		Status:      wkf.StatusField.Name,
		DisplayType: wkf.DisplayType.String(),
		BpmnXml:     wkf.BpmnXml,
		Description: wkf.Description,
	}
	if wkf.AppBuilder != nil {
		row.AppBuilder = wkf.AppBuilder.Code
	}
	return row, nil
}

// EncodeNode builds the row of a node owned by the workflow wkfName.
func EncodeNode(wkfName string, node *domain.WkfNode) WkfNodeRow {
	row := WkfNodeRow{
		Name:      node.Name,
		Title:     node.Title,
		XmlID:     node.XmlID,
		Wkf:       wkfName,
		Sequence:  node.Sequence,
		StartNode: node.StartNode,
		EndNode:   node.EndNode,
		Actions:   make([]string, 0, len(node.Actions)),
	}
	if node.MetaField != nil {
		row.Field = node.MetaField.Name
		row.FieldModel = node.MetaField.ModelName
	}
	for _, a := range node.Actions {
		row.Actions = append(row.Actions, a.Name)
	}
	return row
}

// EncodeTransition builds the row of a transition owned by the workflow wkfName.
func EncodeTransition(wkfName string, t *domain.WkfTransition) (WkfTransitionRow, error) {
	if t.Source == "" {
		return WkfTransitionRow{}, &RelationError{Kind: KindWkfTransition, Wkf: wkfName, Entity: t.Name, Relation: "source"}
	}
	if t.Target == "" {
		return WkfTransitionRow{}, &RelationError{Kind: KindWkfTransition, Wkf: wkfName, Entity: t.Name, Relation: "target"}
	}
	row := WkfTransitionRow{
		Name:       t.Name,
		XmlID:      t.XmlID,
		IsButton:   t.IsButton,
		Wkf:        wkfName,
		SourceNode: t.Source,
		TargetNode: t.Target,
		AlertType:  t.AlertType.String(),
		AlertMsg:   t.AlertMsg.String,
		SuccessMsg: t.SuccessMsg.String,
	}
	if t.IsButton {
		row.ButtonTitle = t.ButtonTitle.String
	}
	return row, nil
}
