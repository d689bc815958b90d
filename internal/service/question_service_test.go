package service

import (
	"testing"

	"panel-review-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeStudents(n int) []*entity.User {
	users := make([]*entity.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, &entity.User{Id: uuid.New(), Role: "student"})
	}
	return users
}

func makeQuestions(authors []*entity.User, perAuthor int) []*entity.Question {
	var questions []*entity.Question
	for _, author := range authors {
		for i := 0; i < perAuthor; i++ {
			questions = append(questions, &entity.Question{Id: uuid.New(), UserId: author.Id})
		}
	}
	return questions
}

func TestBuildAssignmentsSkipsOwnQuestions(t *testing.T) {
	students := makeStudents(3)
	questions := makeQuestions(students, 2)

	authorOf := make(map[uuid.UUID]uuid.UUID)
	for _, q := range questions {
		authorOf[q.Id] = q.UserId
	}

	assignments := buildAssignments(questions, students)
	require.Len(t, assignments, 3)

	for _, student := range students {
		for _, qid := range assignments[student.Id] {
			assert.NotEqual(t, student.Id, authorOf[qid], "students never review their own questions")
		}
	}
}

func TestBuildAssignmentsBalancesLoad(t *testing.T) {
	students := makeStudents(4)
	questions := makeQuestions(students, 3) // 12 questions, 3 per student

	assignments := buildAssignments(questions, students)

	usage := make(map[uuid.UUID]int)
	for _, slice := range assignments {
		assert.Len(t, slice, 3)
		for _, qid := range slice {
			usage[qid]++
		}
	}

	// With a perfectly divisible pool every question is reviewed at least
	// once before any question is reviewed twice.
	min, max := 1<<30, 0
	for _, q := range questions {
		n := usage[q.Id]
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	assert.LessOrEqual(t, max-min, 1, "repetitions stay within one of each other")
}

func TestBuildAssignmentsCoversEveryQuestion(t *testing.T) {
	// One question per author is the hardest pool: the final picks risk
	// leaving an author's only option their own question, stranding it at
	// zero reviewers while another question is reviewed twice.
	for run := 0; run < 30; run++ {
		students := makeStudents(3)
		questions := makeQuestions(students, 1)

		assignments := buildAssignments(questions, students)

		usage := make(map[uuid.UUID]int)
		for _, slice := range assignments {
			for _, qid := range slice {
				usage[qid]++
			}
		}
		for _, q := range questions {
			assert.Equal(t, 1, usage[q.Id], "every question gets exactly one reviewer")
		}
	}
}

func TestBuildAssignmentsDeterministic(t *testing.T) {
	students := makeStudents(3)
	questions := makeQuestions(students, 2)

	first := buildAssignments(questions, students)
	second := buildAssignments(questions, students)
	assert.Equal(t, first, second)
}

func TestBuildAssignmentsNoDuplicatesWithinSlice(t *testing.T) {
	students := makeStudents(2)
	questions := makeQuestions(students, 5)

	assignments := buildAssignments(questions, students)
	for _, slice := range assignments {
		seen := make(map[uuid.UUID]bool)
		for _, qid := range slice {
			assert.False(t, seen[qid], "each question appears at most once per slice")
			seen[qid] = true
		}
	}
}
