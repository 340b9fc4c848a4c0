package emit

import (
	"fmt"

	"github.com/lugondev/solores-go/internal/model"
	"github.com/lugondev/solores-go/internal/rustgen"
	"github.com/lugondev/solores-go/internal/typeexpr"
	"github.com/lugondev/solores-go/internal/util"
)

// Constants renders src/constants.rs: one `pub const` per IDL-declared
// constant. IDLs routinely carry a top-level "constants" array (seed
// strings, fixed sizes) that would otherwise be parsed and then silently
// discarded.
func Constants(constants []model.ConstantDef, cache *typeexpr.QueryCache) string {
	f := rustgen.NewFile()

	needsKey := false
	for _, c := range constants {
		if needsPubkey(cache, c.Type) {
			needsKey = true
		}
	}
	if needsKey {
		f.Use(pubkeyImport)
	}

	for _, c := range constants {
		f.Add(constantItem(c))
	}
	return f.Render()
}

func constantItem(c model.ConstantDef) rustgen.Code {
	name := util.ToScreamingSnakeCase(c.Name)
	line := fmt.Sprintf("pub const %s: %s = %s;", name, c.Type.String(), c.Value)
	return groupWithDocs(c.Docs, rustgen.Raw(line))
}
