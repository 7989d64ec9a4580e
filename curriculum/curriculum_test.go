package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xstraven/brasscoach/exercise"
)

func TestCurriculumStructure(t *testing.T) {
	stages := Get()

	assert := assert.New(t)
	assert.Len(stages, 4)
	assert.Equal(1, stages[0].StageNumber)
	assert.Equal(4, stages[3].StageNumber)

	for _, stage := range stages {
		assert.NotEmpty(stage.Exercises, "stage %v", stage.StageNumber)
		for _, ex := range stage.Exercises {
			assert.NotEmpty(ex.Keys, "%v", ex.Name)
			assert.LessOrEqual(ex.TempoRange[0], ex.TempoRange[1], "%v", ex.Name)
			assert.LessOrEqual(ex.MidiRange[0], ex.MidiRange[1], "%v", ex.Name)
		}
	}
}

func TestStageDifficultyProgression(t *testing.T) {
	for i, stage := range Get() {
		for _, ex := range stage.Exercises {
			assert.Equal(t, i+1, ex.Difficulty, "exercise %q in stage %v", ex.Name, stage.StageNumber)
		}
	}
}

func TestEverySpecGenerates(t *testing.T) {
	// every entry in the registry must come out of the generator playable
	for _, stage := range Get() {
		for _, ex := range stage.Exercises {
			for _, key := range ex.Keys {
				score, err := exercise.Generate(ex.ExerciseType, key, ex.TempoRange[0], ex.Difficulty, ex.MidiRange[0], ex.MidiRange[1])
				assert.NoError(t, err, "%v in %v", ex.Name, key)
				assert.NotEmpty(t, score.Notes, "%v in %v", ex.Name, key)
			}
		}
	}
}
