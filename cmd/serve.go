package cmd

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/silky/music-score/constants"
	"github.com/silky/music-score/midi"
	"github.com/silky/music-score/model"
	"github.com/silky/music-score/mxl"
	"github.com/silky/music-score/rhythm"
	"github.com/silky/music-score/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

// exported file sets by id, persisted across restarts
var registry map[string][]string

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the quantize/export API",
	Long:  `Serves the quantize/export API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func registryPath() string {
	return filepath.Join(constants.GetExportDir(), "registry.dat")
}

func writeError(w http.ResponseWriter, status int, resp model.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func HandleQuantize(w http.ResponseWriter, r *http.Request) {
	var input model.QuantizeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, model.ErrorResponse{Error: "Could not unmarshal request body: " + err.Error()})
		return
	}
	bar, err := barFromBodies(input.Bar)
	if err != nil {
		writeError(w, 400, model.ErrorResponse{Error: err.Error()})
		return
	}

	tree, err := rhythm.Quantize(bar)
	if err != nil {
		var qerr *rhythm.QuantizationError[model.Note]
		if errors.As(err, &qerr) {
			writeError(w, 422, model.ErrorResponse{
				Error:     qerr.Error(),
				Remainder: remainderStrings(qerr.Remainder),
			})
			return
		}
		writeError(w, 500, model.ErrorResponse{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.QuantizeResponse{Tree: treeBody(tree)})
}

func HandleExport(w http.ResponseWriter, r *http.Request) {
	var body model.ScoreBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, 400, model.ErrorResponse{Error: "Could not unmarshal request body: " + err.Error()})
		return
	}
	sc, err := scoreFromBody(body)
	if err != nil {
		writeError(w, 400, model.ErrorResponse{Error: err.Error()})
		return
	}

	doc, err := mxl.FromScore(sc)
	if err != nil {
		var qerr *rhythm.QuantizationError[model.Note]
		if errors.As(err, &qerr) {
			writeError(w, 422, model.ErrorResponse{
				Error:     err.Error(),
				Remainder: remainderStrings(qerr.Remainder),
			})
			return
		}
		writeError(w, 500, model.ErrorResponse{Error: err.Error()})
		return
	}

	id := uuid.New().String()
	dir := constants.GetExportDir()

	midiName := id + ".mid"
	f, err := os.Create(filepath.Join(dir, midiName))
	if err != nil {
		writeError(w, 500, model.ErrorResponse{Error: err.Error()})
		return
	}
	_, err = midi.Export(sc).WriteTo(f)
	f.Close()
	if err != nil {
		writeError(w, 500, model.ErrorResponse{Error: err.Error()})
		return
	}

	xmlName := id + ".xml"
	f, err = os.Create(filepath.Join(dir, xmlName))
	if err != nil {
		writeError(w, 500, model.ErrorResponse{Error: err.Error()})
		return
	}
	err = doc.Encode(f)
	f.Close()
	if err != nil {
		writeError(w, 500, model.ErrorResponse{Error: err.Error()})
		return
	}

	registry[id] = []string{midiName, xmlName}
	util.CreateBinary(registryPath(), registry)
	logger.Info("exported score",
		zap.String("id", id),
		zap.String("title", sc.Title),
		zap.Int("parts", len(sc.Parts)))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.ExportResponse{Id: id, Files: registry[id]})
}

func HandleListExports(w http.ResponseWriter, r *http.Request) {
	res := make([]model.ExportResponse, 0, len(registry))
	for _, id := range util.GetKeys(registry) {
		res = append(res, model.ExportResponse{Id: id, Files: registry[id]})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func HandleGetFile(w http.ResponseWriter, r *http.Request) {
	name := filepath.Base(mux.Vars(r)["name"])
	http.ServeFile(w, r, filepath.Join(constants.GetExportDir(), name))
}

func LoadServeFiles() {
	if logger == nil {
		logger, _ = zap.NewDevelopment()
	}
	os.MkdirAll(constants.GetExportDir(), 0777)
	reg, err := util.LoadBinary[map[string][]string](registryPath())
	if err != nil {
		reg = make(map[string][]string)
	}
	registry = reg
}

func serve() {
	logger, _ = zap.NewProduction()
	defer logger.Sync()
	LoadServeFiles()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/quantize", HandleQuantize).Methods("POST")
	router.HandleFunc("/export", HandleExport).Methods("POST")
	router.HandleFunc("/files", HandleListExports).Methods("GET")
	router.HandleFunc("/files/{name}", HandleGetFile).Methods("GET")
	handler := cors.Default().Handler(router)

	logger.Info("listening", zap.String("addr", ":8080"))
	if err := http.ListenAndServe(":8080", handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
