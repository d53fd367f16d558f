package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/halewijn/edo31/logging"
	"github.com/halewijn/edo31/theory/chord"
	"github.com/halewijn/edo31/theory/tuning"
)

var (
	servePort int
	serveData string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "listen port")
	serveCmd.Flags().StringVar(&serveData, "data", "./out", "generated catalog directory")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves read-only interval and catalog queries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

type errorResponse struct {
	Error string `json:"detail"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func stepsFromPath(r *http.Request) (int, error) {
	raw := mux.Vars(r)["steps"]
	steps, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("steps must be an integer, got %q", raw)
	}
	if steps < 0 || steps > tuning.StepsPerOctave {
		return 0, fmt.Errorf("steps must be in [0, %d]", tuning.StepsPerOctave)
	}
	return steps, nil
}

func handleRatio(w http.ResponseWriter, r *http.Request) {
	steps, err := stepsFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	excluded := r.URL.Query()["excluded"]
	writeJSON(w, tuning.ClosestJustRatio(steps, excluded...))
}

func handleIntervalConsonance(w http.ResponseWriter, r *http.Request) {
	steps, err := stepsFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rating := tuning.RatingForInterval(steps)
	writeJSON(w, map[string]any{
		"rating":      rating,
		"description": tuning.DescribeRating(rating),
	})
}

func handleSetConsonance(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Notes []int `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}
	writeJSON(w, tuning.OverallConsonance(body.Notes))
}

func handleChordType(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Intervals []int `json:"intervals"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}
	writeJSON(w, map[string]string{"type": chord.GetChordType(body.Intervals)})
}

// handleFamily streams a generated family file as-is; the engine already
// wrote it in its serialized shape.
func handleFamily(w http.ResponseWriter, r *http.Request) {
	family := mux.Vars(r)["family"]
	path := filepath.Join(serveData, filepath.Base(family)+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown family: "+family)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func serve() error {
	logger := logging.WithFields(logging.Fields{"component": "server"})

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/ratio/{steps}", handleRatio).Methods("GET")
	router.HandleFunc("/consonance/{steps}", handleIntervalConsonance).Methods("GET")
	router.HandleFunc("/consonance", handleSetConsonance).Methods("POST")
	router.HandleFunc("/chord-type", handleChordType).Methods("POST")
	router.HandleFunc("/scales/{family}", handleFamily).Methods("GET")
	router.HandleFunc("/manifest", func(w http.ResponseWriter, r *http.Request) {
		r = mux.SetURLVars(r, map[string]string{"family": "manifest"})
		handleFamily(w, r)
	}).Methods("GET")

	handler := cors.Default().Handler(router)
	addr := fmt.Sprintf(":%d", servePort)
	logger.Info("serving catalog queries", logging.Fields{"addr": addr, "data": serveData})
	return http.ListenAndServe(addr, handler)
}
