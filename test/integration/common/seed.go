package common

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

const ModuleName = "sales-flow"

// Seed is a store holding one workflow on a static model and one on a
// promoted dynamic model. The statements run unchanged on every dialect.
var Seed = []string{
	`INSERT INTO app_builder (id, code) VALUES (1, 'crm')`,
	`INSERT INTO meta_model (id, name, full_name) VALUES (1, 'Lead', 'com.axelor.apps.crm.db.Lead')`,
	`INSERT INTO meta_field (id, name, meta_model_id) VALUES (1, 'reviewed', 1)`,
	`INSERT INTO meta_json_model (id, name, is_real) VALUES (1, 'Ticket', TRUE)`,
	`INSERT INTO meta_json_field (id, name, model, json_model_id) VALUES (1, 'leadStatus', 'com.axelor.apps.crm.db.Lead', NULL)`,
	`INSERT INTO meta_json_field (id, name, model, json_model_id) VALUES (2, 'ticketStatus', NULL, 1)`,
	`INSERT INTO meta_action (id, name) VALUES (1, 'action-notify')`,
	`INSERT INTO meta_action (id, name) VALUES (2, 'action-assign')`,
	`INSERT INTO wkf (id, name, model, is_json, json_field, status_field_id, display_type_select, bpmn_xml, app_builder_id, description)
	 VALUES (1, 'Lead flow', 'com.axelor.apps.crm.db.Lead', FALSE, NULL, 1, 1, '<bpmn/>', 1, 'Qualifies leads')`,
	`INSERT INTO wkf (id, name, model, is_json, json_field, status_field_id, display_type_select, bpmn_xml, app_builder_id, description)
	 VALUES (2, 'Ticket flow', 'Ticket', TRUE, 'attrs', 2, 0, NULL, NULL, NULL)`,
	`INSERT INTO wkf_node (id, wkf_id, name, title, xml_id, meta_field_id, sequence, start_node, end_node)
	 VALUES (1, 1, 'Start', 'New', 'wkf_lead_start', NULL, 1, TRUE, FALSE)`,
	`INSERT INTO wkf_node (id, wkf_id, name, title, xml_id, meta_field_id, sequence, start_node, end_node)
	 VALUES (2, 1, 'Review', 'In review', 'wkf_lead_review', 1, 2, FALSE, TRUE)`,
	`INSERT INTO wkf_node (id, wkf_id, name, title, xml_id, meta_field_id, sequence, start_node, end_node)
	 VALUES (3, 2, 'Start', 'Open', 'wkf_ticket_start', NULL, 1, TRUE, TRUE)`,
	`INSERT INTO wkf_node_meta_action (id, wkf_node_id, meta_action_id) VALUES (1, 1, 2)`,
	`INSERT INTO wkf_node_meta_action (id, wkf_node_id, meta_action_id) VALUES (2, 1, 1)`,
	`INSERT INTO wkf_transition (id, wkf_id, name, xml_id, is_button, button_title, source_node_id, target_node_id, alert_type_select, alert_msg, success_msg)
	 VALUES (1, 1, 'submit', 'wkf_lead_submit', TRUE, 'Submit', 1, 2, 2, 'Submit lead?', 'Submitted')`,
}

func SeedStore(t *testing.T, db *sql.DB) {
	t.Helper()
	for _, stmt := range Seed {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
}
