package export

import (
	"fmt"

	"github.com/RealZimboGuy/wkfport/internal/dataconfig"
)

const (
	wkfSearch   = "self.name = :name"
	childSearch = "self.name = :name and self.wkf.name = :wkf"
)

func bind(column, to, search string) dataconfig.Bind {
	return dataconfig.Bind{Column: column, To: to, Search: search, Update: true}
}

func required(b dataconfig.Bind) dataconfig.Bind {
	b.Required = true
	return b
}

// onlyWhenSet skips the bind for rows where column is empty.
func onlyWhenSet(b dataconfig.Bind) dataconfig.Bind {
	b.Condition = "!" + b.Column + ".empty"
	return b
}

func decodedWith(b dataconfig.Bind, expr string) dataconfig.Bind {
	b.Expr = expr
	return b
}

// scopedNodeSearch matches a node by name within the row's workflow.
func scopedNodeSearch(column string) string {
	return fmt.Sprintf("self.name = :%s AND self.wkf.name = :wkf", column)
}

func wkfBinds() []dataconfig.Bind {
	return []dataconfig.Bind{
		required(bind("status", "statusField",
			"self.name = :status AND (self.model = :model OR self.jsonModel.name = :model)")),
	}
}

func wkfNodeBinds() []dataconfig.Bind {
	return []dataconfig.Bind{
		onlyWhenSet(bind("field", "metaField", "self.name = :field AND self.metaModel.name = :fieldModel")),
		onlyWhenSet(decodedWith(bind("actions", "metaActionSet", "self.name in :actions"), splitExpr("actions"))),
		required(bind("wkf", "wkf", "self.name = :wkf")),
	}
}

func wkfTransitionBinds() []dataconfig.Bind {
	return []dataconfig.Bind{
		required(bind("wkf", "wkf", "self.name = :wkf")),
		required(bind("sourceNode", "source", scopedNodeSearch("sourceNode"))),
		required(bind("targetNode", "target", scopedNodeSearch("targetNode"))),
	}
}

// FileName is the package file holding rows of kind.
func FileName(prefix, kind string) string {
	return prefix + kind + ".csv"
}

// InputFor builds the descriptor of one entity kind. Every call returns fresh
// slices so inputs of different kinds never share binds.
func InputFor(prefix, kind string) dataconfig.Input {
	input := dataconfig.Input{
		File: FileName(prefix, kind),
		Type: typePackage + kind,
	}
	switch kind {
	case KindWkf:
		input.Search = wkfSearch
		input.Binds = wkfBinds()
	case KindWkfNode:
		input.Search = childSearch
		input.Binds = wkfNodeBinds()
	case KindWkfTransition:
		input.Search = childSearch
		input.Binds = wkfTransitionBinds()
	}
	return input
}
