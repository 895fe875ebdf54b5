package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/RealZimboGuy/wkfport/pkg/wkfport/domain"
)

// WkfRepository reads workflow graphs.
type WkfRepository struct {
	db *sql.DB
}

func NewWkfRepository(db *sql.DB) *WkfRepository {
	return &WkfRepository{db: db}
}

// FindAll returns every workflow ordered by id, with its nodes ordered by
// sequence and its transitions ordered by id. Node actions keep link order.
func (r *WkfRepository) FindAll(ctx context.Context) ([]domain.Wkf, error) {
	query := `
		SELECT w.id, w.name, w.model, w.is_json, w.json_field, w.display_type_select,
		       w.bpmn_xml, w.description,
		       sf.id, sf.name, sf.model, jm.name,
		       ab.id, ab.code
		FROM wkf w
		LEFT JOIN meta_json_field sf ON sf.id = w.status_field_id
		LEFT JOIN meta_json_model jm ON jm.id = sf.json_model_id
		LEFT JOIN app_builder ab ON ab.id = w.app_builder_id
		ORDER BY w.id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	wkfs := make([]domain.Wkf, 0)
	for rows.Next() {
		var (
			w                        domain.Wkf
			bpmnXml, description     sql.NullString
			statusID, appBuilderID   sql.NullInt64
			statusName, statusModel  sql.NullString
			statusJsonModel, appCode sql.NullString
		)
		if err := rows.Scan(
			&w.ID,
			&w.Name,
			&w.Model,
			&w.IsJson,
			&w.JsonField,
			&w.DisplayType,
			&bpmnXml,
			&description,
			&statusID,
			&statusName,
			&statusModel,
			&statusJsonModel,
			&appBuilderID,
			&appCode,
		); err != nil {
			return nil, err
		}
		w.BpmnXml = bpmnXml.String
		w.Description = description.String
		if statusID.Valid {
			w.StatusField = &domain.MetaJsonField{
				ID:        statusID.Int64,
				Name:      statusName.String,
				Model:     statusModel.String,
				JsonModel: statusJsonModel.String,
			}
		}
		if appBuilderID.Valid {
			w.AppBuilder = &domain.AppBuilder{ID: appBuilderID.Int64, Code: appCode.String}
		}
		wkfs = append(wkfs, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for i := range wkfs {
		if err := r.loadGraph(ctx, &wkfs[i]); err != nil {
			return nil, fmt.Errorf("load graph of workflow %q: %w", wkfs[i].Name, err)
		}
	}
	return wkfs, nil
}

func (r *WkfRepository) loadGraph(ctx context.Context, w *domain.Wkf) error {
	nodes, err := r.findNodes(ctx, w)
	if err != nil {
		return err
	}
	actions, err := r.findNodeActions(ctx, w.ID)
	if err != nil {
		return err
	}
	for i := range nodes {
		nodes[i].Actions = actions[nodes[i].ID]
	}
	w.Nodes = nodes

	transitions, err := r.findTransitions(ctx, w)
	if err != nil {
		return err
	}
	w.Transitions = transitions
	return nil
}

func (r *WkfRepository) findNodes(ctx context.Context, w *domain.Wkf) ([]domain.WkfNode, error) {
	query := `
		SELECT n.id, n.name, n.title, n.xml_id, n.sequence, n.start_node, n.end_node,
		       mf.id, mf.name, mm.name
		FROM wkf_node n
		LEFT JOIN meta_field mf ON mf.id = n.meta_field_id
		LEFT JOIN meta_model mm ON mm.id = mf.meta_model_id
		WHERE n.wkf_id = ` + placeholder(1) + `
		ORDER BY n.sequence, n.id
	`
	rows, err := r.db.QueryContext(ctx, query, w.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nodes []domain.WkfNode
	for rows.Next() {
		var (
			n                    domain.WkfNode
			title, xmlID         sql.NullString
			fieldID              sql.NullInt64
			fieldName, modelName sql.NullString
		)
		if err := rows.Scan(
			&n.ID,
			&n.Name,
			&title,
			&xmlID,
			&n.Sequence,
			&n.StartNode,
			&n.EndNode,
			&fieldID,
			&fieldName,
			&modelName,
		); err != nil {
			return nil, err
		}
		n.WkfName = w.Name
		n.Title = title.String
		n.XmlID = xmlID.String
		if fieldID.Valid {
			n.MetaField = &domain.MetaField{ID: fieldID.Int64, Name: fieldName.String, ModelName: modelName.String}
		}
		nodes = append(nodes, n)
	}
	return nodes, rows.Err()
}

// findNodeActions returns the actions of every node of a workflow, keyed by node id.
func (r *WkfRepository) findNodeActions(ctx context.Context, wkfID int64) (map[int64][]domain.MetaAction, error) {
	query := `
		SELECT na.wkf_node_id, a.id, a.name
		FROM wkf_node_meta_action na
		JOIN meta_action a ON a.id = na.meta_action_id
		JOIN wkf_node n ON n.id = na.wkf_node_id
		WHERE n.wkf_id = ` + placeholder(1) + `
		ORDER BY na.id
	`
	rows, err := r.db.QueryContext(ctx, query, wkfID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actions := make(map[int64][]domain.MetaAction)
	for rows.Next() {
		var nodeID int64
		var a domain.MetaAction
		if err := rows.Scan(&nodeID, &a.ID, &a.Name); err != nil {
			return nil, err
		}
		actions[nodeID] = append(actions[nodeID], a)
	}
	return actions, rows.Err()
}

func (r *WkfRepository) findTransitions(ctx context.Context, w *domain.Wkf) ([]domain.WkfTransition, error) {
	query := `
		SELECT t.id, t.name, t.xml_id, t.is_button, t.button_title,
		       src.name, tgt.name,
		       t.alert_type_select, t.alert_msg, t.success_msg
		FROM wkf_transition t
		LEFT JOIN wkf_node src ON src.id = t.source_node_id
		LEFT JOIN wkf_node tgt ON tgt.id = t.target_node_id
		WHERE t.wkf_id = ` + placeholder(1) + `
		ORDER BY t.id
	`
	rows, err := r.db.QueryContext(ctx, query, w.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transitions []domain.WkfTransition
	for rows.Next() {
		var (
			t              domain.WkfTransition
			xmlID          sql.NullString
			source, target sql.NullString
		)
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&xmlID,
			&t.IsButton,
			&t.ButtonTitle,
			&source,
			&target,
			&t.AlertType,
			&t.AlertMsg,
			&t.SuccessMsg,
		); err != nil {
			return nil, err
		}
		t.WkfName = w.Name
		t.XmlID = xmlID.String
		t.Source = source.String
		t.Target = target.String
		transitions = append(transitions, t)
	}
	return transitions, rows.Err()
}
