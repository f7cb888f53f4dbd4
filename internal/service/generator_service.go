package service

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/classroomquiz/backend/internal/model"
)

// GeneratorService produces templated multiple-choice packs for a topic. The
// teacher previews a pack, optionally edits it, and publishes it as an
// activity.
type GeneratorService interface {
	GeneratePack(topic string, difficulty model.Difficulty, gradeLevel string) model.Quiz
}

type generatorService struct{}

func NewGeneratorService() GeneratorService {
	return &generatorService{}
}

// questionTemplate builds a question text and options around a topic. The
// correct option index refers to the options slice before shuffling.
type questionTemplate struct {
	text         string
	options      [4]string
	correctIndex int
}

var templatePools = map[model.Difficulty][]questionTemplate{
	model.DifficultyEasy: {
		{
			text: "Which option states the main idea of %s?",
			options: [4]string{
				"It explains the basic concept of %s in plain language.",
				"It mixes unrelated subjects together.",
				"It focuses on memorizing words without meaning.",
				"It offers only unsupported opinions.",
			},
			correctIndex: 0,
		},
		{
			text: "Which example best connects %s to everyday school life?",
			options: [4]string{
				"An example with no relation to school.",
				"A practical situation where %s shows up in daily routine.",
				"A sentence copied without context.",
				"A random historical fact.",
			},
			correctIndex: 1,
		},
		{
			text: "Which action helps you learn %s more clearly?",
			options: [4]string{
				"Studying without asking questions.",
				"Memorizing without reviewing examples.",
				"Relating %s to examples from your own community.",
				"Ignoring doubts during class.",
			},
			correctIndex: 2,
		},
		{
			text: "Which attitude shows active participation when studying %s?",
			options: [4]string{
				"Relating the topic to simple examples from the class's reality.",
				"Skipping examples to finish faster.",
				"Avoiding any question during class.",
				"Memorizing sentences without understanding.",
			},
			correctIndex: 0,
		},
		{
			text: "When reviewing %s, which choice improves early learning?",
			options: [4]string{
				"Copying answers without interpreting them.",
				"Explaining the content in your own words with examples.",
				"Reading only headings without going deeper.",
				"Answering at random.",
			},
			correctIndex: 1,
		},
	},
	model.DifficultyMedium: {
		{
			text: "When studying %s, which strategy shows solid understanding?",
			options: [4]string{
				"Repeating definitions without analyzing applications.",
				"Comparing two scenarios and explaining how %s appears in each.",
				"Picking answers without justification.",
				"Using a single source without checking reliability.",
			},
			correctIndex: 1,
		},
		{
			text: "Which option represents a correct application of %s?",
			options: [4]string{
				"Using data without interpreting the results.",
				"Copying classmates' conclusions without discussion.",
				"Applying %s to solve a classroom problem and justifying the choice.",
				"Avoiding any link between theory and practice.",
			},
			correctIndex: 2,
		},
		{
			text: "To argue about %s, which stance is most appropriate?",
			options: [4]string{
				"Using real examples and explaining cause and effect.",
				"Just repeating the question prompt.",
				"Ignoring different points of view.",
				"Selecting answers at random.",
			},
			correctIndex: 0,
		},
		{
			text: "Which choice shows a sound application of %s in class work?",
			options: [4]string{
				"Selecting examples unrelated to the goals.",
				"Using a single argument without data.",
				"Connecting theory, example and justification in a logical sequence.",
				"Refusing to compare alternatives.",
			},
			correctIndex: 2,
		},
		{
			text: "To consolidate %s, which strategy is most effective?",
			options: [4]string{
				"Building an explanation with evidence and a counterexample.",
				"Memorizing ready-made answers without adapting them.",
				"Summarizing only isolated keywords.",
				"Ignoring historical and social context.",
			},
			correctIndex: 0,
		},
	},
	model.DifficultyHard: {
		{
			text: "Considering %s, which option presents the most robust critical analysis?",
			options: [4]string{
				"Accepting a single explanation without confronting data.",
				"Weighing evidence, limits and impacts of %s across scenarios.",
				"Memorizing technical terms without interpretation.",
				"Rushing to conclusions without verification.",
			},
			correctIndex: 1,
		},
		{
			text: "In a problem situation about %s, which decision shows the most depth?",
			options: [4]string{
				"Choosing the first plausible option.",
				"Disregarding social and educational variables.",
				"Separating facts from opinions and justifying choices with evidence.",
				"Analyzing a single isolated indicator.",
			},
			correctIndex: 2,
		},
		{
			text: "Which proposal indicates advanced command of %s for this grade?",
			options: [4]string{
				"Connecting concepts, weighing consequences and proposing an applicable improvement.",
				"Repeating a ready-made example without adaptation.",
				"Focusing only on the literal definition.",
				"Ignoring relevant counterexamples.",
			},
			correctIndex: 0,
		},
		{
			text: "In a debate about %s, which action represents advanced analysis?",
			options: [4]string{
				"Picking the popular argument without checking it.",
				"Cross-referencing data, noting limits and proposing a justified intervention.",
				"Holding onto personal opinions only.",
				"Discarding diverging evidence.",
			},
			correctIndex: 1,
		},
		{
			text: "To solve a complex case involving %s, which path is most reliable?",
			options: [4]string{
				"Applying a ready formula without validating the context.",
				"Avoiding any review of hypotheses.",
				"Defining criteria, testing alternatives and justifying the final choice.",
				"Prioritizing speed over consistency.",
			},
			correctIndex: 2,
		},
	},
}

var versionLetters = []string{"A", "B", "C", "D"}

func (g *generatorService) GeneratePack(topic string, difficulty model.Difficulty, gradeLevel string) model.Quiz {
	pool := templatePools[difficulty]

	picked := rand.Perm(len(pool))[:model.QuestionsPerActivity]
	questions := make([]model.Question, 0, model.QuestionsPerActivity)
	for i, poolIdx := range picked {
		tpl := pool[poolIdx]
		question := model.Question{
			ID:           fmt.Sprintf("q%d", i+1),
			Text:         expand(tpl.text, topic),
			CorrectIndex: tpl.correctIndex,
			Difficulty:   difficulty,
		}
		for _, opt := range tpl.options {
			question.Options = append(question.Options, expand(opt, topic))
		}
		questions = append(questions, g.shuffleOptions(question))
	}

	version := versionLetters[rand.Intn(len(versionLetters))] + fmt.Sprintf("%04d", time.Now().UnixMilli()%10000)

	return model.Quiz{
		Topic:      topic,
		Difficulty: difficulty,
		GradeLevel: gradeLevel,
		Version:    version,
		Questions:  questions,
	}
}

// shuffleOptions permutes the options and remaps CorrectIndex to follow the
// correct option to its new position.
func (g *generatorService) shuffleOptions(q model.Question) model.Question {
	perm := rand.Perm(len(q.Options))
	shuffled := make([]string, len(q.Options))
	newCorrect := q.CorrectIndex
	for newPos, oldPos := range perm {
		shuffled[newPos] = q.Options[oldPos]
		if oldPos == q.CorrectIndex {
			newCorrect = newPos
		}
	}
	q.Options = shuffled
	q.CorrectIndex = newCorrect
	return q
}

// expand substitutes the topic into a template. Templates without a
// placeholder pass through unchanged.
func expand(tpl, topic string) string {
	if !strings.Contains(tpl, "%s") {
		return tpl
	}
	return fmt.Sprintf(tpl, topic)
}
