// mockserver answers every operation of the API with the example of its
// output model, and serves the OpenAPI document at /openapi.json. Point
// a client at it with BROWSERKIT_BASE_URL=http://localhost:9090.
package main

import (
	"fmt"
	"net/http"

	"github.com/tailbits/browserkit"
	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/openapi"
)

func exampleHandler(op browserkit.Operation) http.HandlerFunc {
	body := op.Output.Example()
	if op.List {
		body = append(append([]byte("["), body...), ']')
	}
	_, noContent := op.Output.(model.Nil)
	status := op.Status()

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-BB-API-Key") == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"missing API key"}`))
			return
		}
		if noContent {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}
}

func main() {
	reg := browserkit.NewRegistry()
	mux := http.NewServeMux()

	for _, op := range reg.Ops() {
		mux.Handle(op.Method+" "+op.Path, exampleHandler(op))
	}

	// Generate the OpenAPI schema
	schema, err := openapi.New(reg)
	if err != nil {
		panic(fmt.Errorf("failed to generate OpenAPI schema: %w", err))
	}

	// We can mix example endpoints with standard HTTP handlers
	mux.HandleFunc("GET /openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(schema)
	})

	server := &http.Server{
		Addr:    ":9090",
		Handler: mux,
	}
	fmt.Println("API URL      : http://localhost:9090")
	fmt.Println("OpenAPI spec : http://localhost:9090/openapi.json")
	if err := server.ListenAndServe(); err != nil {
		panic(err)
	}
}
