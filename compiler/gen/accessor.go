package gen

import (
	"github.com/dave/jennifer/jen"
)

// genRecord emits the record struct of a declaration. All fields are
// unexported; values are constructed through the builder and read through
// the generated accessors.
func genRecord(f *jen.File, t *Type) {
	if c := t.Comment(); c != "" {
		f.Comment(c)
	} else {
		f.Commentf("%s is the record type generated from the %s declaration.", t.Name, t.Name)
	}
	f.Type().Id(t.Name).StructFunc(func(g *jen.Group) {
		for _, fl := range t.Fields {
			if fl.Comment != "" {
				g.Comment(fl.Comment)
			}
			g.Id(fl.StructField()).Add(typeCode(fl.Type))
		}
	})
}

// genString emits the fmt.Stringer implementation of the record type,
// dumping every field in declaration order.
func genString(f *jen.File, t *Type) {
	rcv := t.Receiver()
	f.Comment("String implements the fmt.Stringer.")
	f.Func().Params(jen.Id(rcv).Op("*").Id(t.Name)).Id("String").Params().String().BlockFunc(func(g *jen.Group) {
		g.Var().Id("builder").Qual("strings", "Builder")
		g.Id("builder").Dot("WriteString").Call(jen.Lit(t.Name + "("))
		for i, fl := range t.Fields {
			label := fl.Name + "="
			if i > 0 {
				label = ", " + label
			}
			g.Id("builder").Dot("WriteString").Call(jen.Lit(label))
			if fl.IsText() {
				g.Id("builder").Dot("WriteString").Call(jen.Id(rcv).Dot(fl.StructField()))
			} else {
				g.Id("builder").Dot("WriteString").Call(jen.Qual("fmt", "Sprintf").Call(
					jen.Lit("%v"),
					jen.Id(rcv).Dot(fl.StructField()),
				))
			}
		}
		g.Id("builder").Dot("WriteString").Call(jen.Lit(")"))
		g.Return(jen.Id("builder").Dot("String").Call())
	})
}

// genAccessors emits a read accessor for every exposed field.
func genAccessors(f *jen.File, t *Type) {
	rcv := t.Receiver()
	for _, fl := range t.Fields {
		if !fl.Exposed {
			continue
		}
		if fl.IsSequence() {
			f.Commentf("%s returns the %s of the %s. The returned slice is a view over the record and must not be modified.", fl.Accessor(), fl.Name, t.Name)
		} else {
			f.Commentf("%s returns the %s of the %s.", fl.Accessor(), fl.Name, t.Name)
		}
		f.Func().Params(jen.Id(rcv).Op("*").Id(t.Name)).Id(fl.Accessor()).Params().Add(typeCode(fl.Type)).Block(
			jen.Return(jen.Id(rcv).Dot(fl.StructField())),
		)
	}
}
