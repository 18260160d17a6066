package webhook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	log "github.com/sirupsen/logrus"
)

// metacontroller sends the parent and its children; a few MiB is plenty
const maxRequestBytes = 4 << 20

//go:generate counterfeiter -o fakes/syncer.go --fake-name Syncer . syncer
type syncer interface {
	Sync(ctx context.Context, syncRequest SyncRequest) (*SyncResponse, error)
}

type SyncHandler struct {
	Marshaler   marshal.Marshaler
	Unmarshaler marshal.Unmarshaler
	Syncer      syncer
}

// ServeHTTP serves the /sync webhook to metacontroller
func (r *SyncHandler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	rw.Header().Set("Content-Type", "application/json")

	if req.Method != http.MethodPost {
		rw.Header().Set("Allow", http.MethodPost)
		r.respondWithCode(http.StatusMethodNotAllowed, rw, "method not allowed")
		return
	}

	bodyBytes, err := io.ReadAll(http.MaxBytesReader(rw, req.Body, maxRequestBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			r.respondWithCode(http.StatusRequestEntityTooLarge, rw, "request too large")
			return
		}
		r.respondWithCode(http.StatusInternalServerError, rw, "failed to read request")
		return
	}

	syncRequest := &SyncRequest{}
	err = r.Unmarshaler.Unmarshal(bodyBytes, syncRequest)
	if err != nil {
		log.WithError(err).Warn("failed to unmarshal sync request")
		r.respondWithCode(http.StatusBadRequest, rw, "failed to unmarshal request")
		return
	}

	logger := log.WithFields(log.Fields{"parent": syncRequest.Parent.Name, "finalizing": syncRequest.Finalizing})
	response, err := r.Syncer.Sync(req.Context(), *syncRequest)
	if err != nil {
		if errors.Is(err, UninitializedError) {
			logger.Info("asked to sync before the first snapshot")
			r.respondWithCode(http.StatusInternalServerError, rw, err.Error())
		} else {
			logger.WithError(err).Error("sync failed")
			r.respondWithCode(http.StatusInternalServerError, rw, "Internal Server Error")
		}
		return
	}
	bytes, err := r.Marshaler.Marshal(response)
	if err != nil {
		logger.WithError(err).Error("failed to marshal sync response")
		r.respondWithCode(http.StatusInternalServerError, rw, "failed to marshal response")
		return
	}
	rw.Write(bytes)
}

func (r *SyncHandler) respondWithCode(statusCode int, w http.ResponseWriter, description string) {
	w.WriteHeader(statusCode)
	w.Write([]byte(fmt.Sprintf(`{"error": "%s"}`, description)))
}
