package health

import "net/http"

// Handler answers the hosting platform's liveness probe. It never touches
// core state, so it keeps responding even when the bot is busy.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", probe)
	mux.HandleFunc("/health", probe)
	return mux
}

func probe(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
