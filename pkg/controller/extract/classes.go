package extract

import (
	"github.com/legacyscan/legacyscan/pkg/javaparse"
	"github.com/legacyscan/legacyscan/pkg/structure"
)

// Classes converts the top level class declarations of a compilation unit.
// Interfaces, enums, records and annotation types are skipped.
func Classes(cu *javaparse.CompilationUnit) []structure.ClassStructure {
	classes := []structure.ClassStructure{}
	for _, td := range cu.Types {
		if td.Kind != javaparse.KindClass {
			continue
		}
		classes = append(classes, classStructure(td))
	}
	return classes
}

func classStructure(td *javaparse.TypeDeclaration) structure.ClassStructure {
	cs := structure.ClassStructure{
		Name: td.Name,
	}
	for _, fd := range td.Fields {
		for _, decl := range fd.Declarators {
			cs.Fields = append(cs.Fields, structure.FieldInfo{
				Type: fd.Type + decl.Dimensions,
				Name: decl.Name,
			})
		}
	}
	for _, md := range td.Methods {
		m := structure.MethodInfo{
			Name: md.Name,
		}
		for _, p := range md.Parameters {
			typ := p.Type
			if p.Varargs {
				typ += "..."
			}
			m.Parameters = append(m.Parameters, structure.Parameter{
				Type: typ,
				Name: p.Name,
			})
		}
		cs.Methods = append(cs.Methods, m)
	}
	return cs
}
