package app

import (
	"log"
	"net/http"

	"github.com/auxroom/auxroom-api/controller"
	"github.com/auxroom/auxroom-api/room"
	"github.com/gorilla/mux"
)

type App struct {
	Router     *mux.Router
	Controller *controller.Controller
	Hub        *room.Hub
}

func (a *App) Initialize() {
	a.Hub = room.NewHub()
	go a.Hub.Run()

	a.Controller = &controller.Controller{Hub: a.Hub}
	a.initRouter()
}

func (a *App) Run(addr string) {
	log.Printf("serving on %s...", addr)
	log.Fatalf("server error: %s", http.ListenAndServe(addr, withMiddleware(a.Router)))
}
