package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/xstraven/brasscoach/analysis"
	"github.com/xstraven/brasscoach/curriculum"
	"github.com/xstraven/brasscoach/exercise"
	"github.com/xstraven/brasscoach/model"
	"github.com/xstraven/brasscoach/musicxml"
	"github.com/xstraven/brasscoach/pitch"
	"github.com/xstraven/brasscoach/transpose"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the practice API over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, into any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	if err := json.Unmarshal(body, into); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func HandleParse(w http.ResponseWriter, r *http.Request) {
	var input model.ParseRequestBody
	if !decodeBody(w, r, &input) {
		return
	}

	score, err := musicxml.Parse(input.XML)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	json.NewEncoder(w).Encode(score)
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var input model.AnalyzeRequestBody
	if !decodeBody(w, r, &input) {
		return
	}

	played := input.Played
	trail := input.PitchTrail
	if input.ConcertPitch && input.Score.Transpose != nil {
		t := *input.Score.Transpose
		shifted := make([]model.PlayedNote, len(played))
		for i, p := range played {
			p.MidiFloat = transpose.ConcertToWrittenFloat(p.MidiFloat, t)
			p.MidiRounded = int(math.Round(p.MidiFloat))
			shifted[i] = p
		}
		played = shifted

		shiftedTrail := make([]model.PitchTrailPoint, len(trail))
		for i, pt := range trail {
			pt.MidiFloat = transpose.ConcertToWrittenFloat(pt.MidiFloat, t)
			shiftedTrail[i] = pt
		}
		trail = shiftedTrail
	}
	if len(played) == 0 && len(trail) > 0 {
		played = analysis.SegmentTrail(trail)
	}

	result := analysis.AnalyzeWithTrail(&input.Score, played,
		input.PitchToleranceCents, input.TimingToleranceBeats, trail)

	json.NewEncoder(w).Encode(model.AnalyzeResponse{
		TakeID:   uuid.New().String(),
		Analysis: result,
	})
}

func HandleExercise(w http.ResponseWriter, r *http.Request) {
	var input model.ExerciseRequestBody
	if !decodeBody(w, r, &input) {
		return
	}

	score, err := exercise.Generate(input.ExerciseType, input.Key, input.Tempo,
		input.Difficulty, input.MidiLow, input.MidiHigh)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	json.NewEncoder(w).Encode(score)
}

func HandlePitch(w http.ResponseWriter, r *http.Request) {
	var input model.PitchRequestBody
	if !decodeBody(w, r, &input) {
		return
	}
	json.NewEncoder(w).Encode(pitch.Detect(input.Samples, input.SampleRate))
}

func HandleCurriculum(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(curriculum.Get())
}

func newRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/parse", HandleParse).Methods("POST")
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")
	router.HandleFunc("/exercise", HandleExercise).Methods("POST")
	router.HandleFunc("/pitch", HandlePitch).Methods("POST")
	router.HandleFunc("/curriculum", HandleCurriculum).Methods("GET")
	return cors.Default().Handler(router)
}

func serve() {
	fmt.Printf("Listening on %v\n", serveAddr)
	log.Fatal(http.ListenAndServe(serveAddr, newRouter()))
}
