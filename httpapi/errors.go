package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/f-coded/omotanwa-aesthetics-glow/common"
)

const ErrMsgMalformedBody = "Malformed request body"

// writeError renders err the way grpc-gateway renders a status: the
// google.rpc.Status proto as JSON, with the matching HTTP code.
func writeError(w http.ResponseWriter, err error) {
	st := status.Convert(common.MapCommandError(err))
	body, merr := protojson.Marshal(st.Proto())
	if merr != nil {
		http.Error(w, st.Message(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(runtime.HTTPStatusFromCode(st.Code()))
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return common.NewInvalidArgument(ErrMsgMalformedBody)
	}
	return nil
}
