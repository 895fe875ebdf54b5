package export

import (
	"testing"

	"github.com/RealZimboGuy/wkfport/internal/dataconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindByColumn(t *testing.T, input dataconfig.Input, column string) dataconfig.Bind {
	t.Helper()
	for _, b := range input.Binds {
		if b.Column == column {
			return b
		}
	}
	t.Fatalf("no bind for column %s in %s", column, input.File)
	return dataconfig.Bind{}
}

func TestInputFor_Wkf(t *testing.T) {
	input := InputFor("sales_", KindWkf)

	assert.Equal(t, "sales_Wkf.csv", input.File)
	assert.Equal(t, "com.axelor.studio.db.Wkf", input.Type)
	assert.Equal(t, "self.name = :name", input.Search)
	require.Len(t, input.Binds, 1)

	status := input.Binds[0]
	assert.Equal(t, "statusField", status.To)
	assert.Equal(t, "self.name = :status AND (self.model = :model OR self.jsonModel.name = :model)", status.Search)
	assert.True(t, status.Required)
	assert.True(t, status.Update)
}

func TestInputFor_WkfNode(t *testing.T) {
	input := InputFor("sales_", KindWkfNode)

	assert.Equal(t, "sales_WkfNode.csv", input.File)
	assert.Equal(t, "self.name = :name and self.wkf.name = :wkf", input.Search)

	field := bindByColumn(t, input, "field")
	assert.Equal(t, "metaField", field.To)
	assert.Equal(t, "self.name = :field AND self.metaModel.name = :fieldModel", field.Search)
	assert.Equal(t, "!field.empty", field.Condition)
	assert.False(t, field.Required)

	actions := bindByColumn(t, input, "actions")
	assert.Equal(t, "metaActionSet", actions.To)
	assert.Equal(t, "self.name in :actions", actions.Search)
	assert.Equal(t, `actions.split('\\|') as List`, actions.Expr)

	wkf := bindByColumn(t, input, "wkf")
	assert.Equal(t, "self.name = :wkf", wkf.Search)
	assert.True(t, wkf.Required)
}

func TestInputFor_WkfTransitionScopesNodesByWorkflow(t *testing.T) {
	input := InputFor("sales_", KindWkfTransition)

	assert.Equal(t, "sales_WkfTransition.csv", input.File)
	assert.Contains(t, input.Search, ":name")
	assert.Contains(t, input.Search, ":wkf")

	for _, column := range []string{"sourceNode", "targetNode"} {
		b := bindByColumn(t, input, column)
		assert.Contains(t, b.Search, ":"+column)
		assert.Contains(t, b.Search, "self.wkf.name = :wkf")
		assert.True(t, b.Required)
	}
	assert.Equal(t, "source", bindByColumn(t, input, "sourceNode").To)
	assert.Equal(t, "target", bindByColumn(t, input, "targetNode").To)
}

func TestInputFor_FreshBindsPerCall(t *testing.T) {
	first := InputFor("a_", KindWkfNode)
	first.Binds[0].Search = "tampered"

	second := InputFor("a_", KindWkfNode)
	assert.NotEqual(t, "tampered", second.Binds[0].Search)
}
