package progress

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xstraven/brasscoach/model"
)

func TestRecordKeepsBest(t *testing.T) {
	r := Records{}

	assert := assert.New(t)
	assert.True(r.Record("major_scale", "C4", 70))
	assert.True(r.Record("major_scale", "C4", 85))
	assert.False(r.Record("major_scale", "C4", 60))
	assert.Equal(85.0, r[Key("major_scale", "C4")])
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.dat")

	r := Records{}
	r.Record("long_tones", "C4", 92)
	r.Record("chromatic", "C4", 81)

	assert := assert.New(t)
	assert.NoError(Save(path, r))

	loaded, err := Load(path)
	assert.NoError(err)
	assert.Equal(r, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	loaded, err := Load(filepath.Join(t.TempDir(), "nope.dat"))
	assert.NoError(t, err)
	assert.Empty(t, loaded)
}

func stageWith(types ...string) model.CurriculumStage {
	stage := model.CurriculumStage{StageNumber: 1, Name: "Test"}
	for _, ty := range types {
		stage.Exercises = append(stage.Exercises, model.ExerciseSpec{
			ExerciseType: ty,
			Keys:         []string{"C4"},
		})
	}
	return stage
}

func TestStagePassed(t *testing.T) {
	stage := stageWith("long_tones", "major_scale", "chromatic", "lip_slurs")

	r := Records{}
	assert := assert.New(t)
	assert.False(StagePassed(stage, r))

	r.Record("long_tones", "C4", 85)
	r.Record("major_scale", "C4", 90)
	assert.False(StagePassed(stage, r))

	// 79.9 does not clear the bar
	r.Record("chromatic", "C4", 79.9)
	assert.False(StagePassed(stage, r))

	r.Record("chromatic", "C4", 80)
	assert.True(StagePassed(stage, r))
}

func TestStagePassedSmallStage(t *testing.T) {
	stage := stageWith("long_tones", "major_scale")

	r := Records{}
	r.Record("long_tones", "C4", 85)
	assert.False(t, StagePassed(stage, r))

	r.Record("major_scale", "C4", 85)
	assert.True(t, StagePassed(stage, r))
}

func TestBestAcrossKeys(t *testing.T) {
	ex := model.ExerciseSpec{ExerciseType: "major_scale", Keys: []string{"C4", "F4", "G4"}}

	r := Records{}
	r.Record("major_scale", "F4", 88)
	r.Record("major_scale", "C4", 70)

	assert.Equal(t, 88.0, r.Best(ex))
}
