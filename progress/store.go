package progress

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/xstraven/brasscoach/model"
)

// PassScore is the best-score bar an exercise must clear to count toward
// unlocking the next stage.
const PassScore = 80.0

// PassCount is how many cleared exercises unlock a stage. Stages with
// fewer exercises need all of them.
const PassCount = 3

// Records maps "<exercise_type>_<key>" to the best score achieved.
type Records map[string]float64

func Key(exerciseType, key string) string {
	return fmt.Sprintf("%v_%v", exerciseType, key)
}

// Load reads the gob progress file. A missing file is an empty history.
func Load(path string) (Records, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Records{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not open progress file")
	}
	defer f.Close()

	var records Records
	if err := gob.NewDecoder(f).Decode(&records); err != nil {
		return nil, errors.Wrap(err, "could not decode progress file")
	}
	return records, nil
}

func Save(path string, records Records) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create progress file")
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(records); err != nil {
		return errors.Wrap(err, "could not encode progress file")
	}
	return nil
}

// Record keeps the score if it beats the stored best, reporting whether
// it did.
func (r Records) Record(exerciseType, key string, score float64) bool {
	k := Key(exerciseType, key)
	if best, ok := r[k]; ok && best >= score {
		return false
	}
	r[k] = score
	return true
}

// Best is the stored best across all of an exercise's keys.
func (r Records) Best(ex model.ExerciseSpec) float64 {
	var best float64
	for _, key := range ex.Keys {
		if v, ok := r[Key(ex.ExerciseType, key)]; ok && v > best {
			best = v
		}
	}
	return best
}

// StagePassed applies the unlock rule: enough exercises in the stage with
// a best score of at least PassScore.
func StagePassed(stage model.CurriculumStage, r Records) bool {
	need := PassCount
	if len(stage.Exercises) < need {
		need = len(stage.Exercises)
	}
	if need == 0 {
		return false
	}

	passed := 0
	for _, ex := range stage.Exercises {
		if r.Best(ex) >= PassScore {
			passed++
		}
	}
	return passed >= need
}
