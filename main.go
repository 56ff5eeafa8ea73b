package main

import (
	"log"
	"net/http"

	"github.com/km-arc/go-httpfactory/framework/app"
	"github.com/km-arc/go-httpfactory/framework/routing"
)

func main() {
	application, err := app.New() // loads .env automatically
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	r := application.Router()
	creator := application.ServerRequestCreator()
	responses := application.ResponseFactory()

	// Echo back what the factories parsed out of the inbound request.
	r.Get("/inspect", func(w http.ResponseWriter, raw *http.Request) {
		req, err := creator.FromRequest(raw)
		if err != nil {
			_ = responses.CreateResponse(http.StatusBadRequest).
				JSON(map[string]any{"message": err.Error()}).
				Write(w)
			return
		}

		res := responses.CreateResponse(http.StatusOK).JSON(map[string]any{
			"method": req.Method(),
			"path":   req.Path(),
			"query":  req.All(),
			"json":   req.IsJSON(),
		})
		_ = res.Write(w)
	})

	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Post("/users", func(w http.ResponseWriter, raw *http.Request) {
			req, err := creator.FromRequest(raw)
			if err != nil {
				_ = responses.CreateResponse(http.StatusBadRequest).
					JSON(map[string]any{"message": err.Error()}).
					Write(w)
				return
			}

			var body struct {
				Name  string `json:"name"`
				Email string `json:"email"`
			}
			if err := req.Bind(&body); err != nil {
				_ = responses.CreateResponse(http.StatusUnprocessableEntity).
					JSON(map[string]any{"message": err.Error()}).
					Write(w)
				return
			}

			_ = responses.CreateResponse(http.StatusCreated).
				JSON(map[string]any{"data": body}).
				Write(w)
		})
	})

	application.Run()
}
