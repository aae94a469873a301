package router

import (
	"github.com/peterouob/gobasics/lesson"
	"github.com/peterouob/gobasics/tutorial"
)

func SetupRouter(r *tutorial.Runner) {
	r.Handle("bindings", "Bindings and mutability", lesson.Bindings)
	r.Handle("if", "If and else", lesson.If)
	r.Handle("functions", "Functions", lesson.Functions)
	r.Handle("tuples", "Tuples", lesson.Tuples)
	r.Handle("structs", "Structs", lesson.Structs)
	r.Handle("tuple-structs", "Tuple structs and newtypes", lesson.TupleStructs)
	r.Handle("enums", "Enums and ordering", lesson.Enums)
	r.Handle("tagged-unions", "Enums with values", lesson.TaggedUnions)
	r.Handle("loops", "Loops", lesson.Loops)
	r.Handle("strings", "Strings", lesson.Strings)
	r.Handle("arrays", "Arrays", lesson.Arrays)
	r.Handle("vectors", "Vectors", lesson.Vectors)
	r.Handle("slices", "Slices", lesson.Slices)
}
