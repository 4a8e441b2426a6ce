package queries

import (
	"strconv"

	"github.com/mesh-intelligence/prototypes/pkg/relational"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// StudentsForEachInstructor pairs every instructor with the student count of
// the cohort at position Module-1.
func StudentsForEachInstructor(fx *types.Fixtures) []types.InstructorStudents {
	return relational.JoinByOffset(fx.Instructors, fx.Cohorts,
		func(in types.Instructor) int { return in.Module - 1 },
		func(in types.Instructor, c types.Cohort) types.InstructorStudents {
			return types.InstructorStudents{Name: in.Name, StudentCount: c.StudentCount}
		})
}

// StudentsPerInstructor maps "cohort<number>" to the cohort's students per
// instructor of the same module.
func StudentsPerInstructor(fx *types.Fixtures) map[string]float64 {
	ratios := relational.JoinWhere(fx.Cohorts, fx.Instructors,
		func(c types.Cohort, in types.Instructor) bool { return in.Module == c.Module },
		func(c types.Cohort, teachers []types.Instructor) float64 {
			return float64(c.StudentCount) / float64(len(teachers))
		})
	out := make(map[string]float64, len(fx.Cohorts))
	for i, c := range fx.Cohorts {
		out["cohort"+strconv.Itoa(c.Cohort)] = ratios[i]
	}
	return out
}

// ModulesPerTeacher maps each instructor to the modules whose curriculum
// shares at least one topic with what they teach.
func ModulesPerTeacher(fx *types.Fixtures) map[string][]int {
	out := make(map[string][]int, len(fx.Instructors))
	for _, in := range fx.Instructors {
		out[in.Name] = relational.FilterMap(fx.Cohorts,
			func(c types.Cohort) bool { return relational.ContainsAny(in.Teaches, c.Curriculum) },
			func(c types.Cohort) int { return c.Module })
	}
	return out
}

// CurriculumPerTeacher maps every curriculum topic to the instructors who
// teach it. Topics nobody teaches map to an empty list.
func CurriculumPerTeacher(fx *types.Fixtures) map[string][]string {
	topics := relational.Unique(fx.Cohorts, func(c types.Cohort) []string { return c.Curriculum })
	out := make(map[string][]string, len(topics))
	for _, topic := range topics {
		out[topic] = relational.FilterMap(fx.Instructors,
			func(in types.Instructor) bool { return relational.Contains(in.Teaches, topic) },
			func(in types.Instructor) string { return in.Name })
	}
	return out
}
