package cmd

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/grouphub/user-group-services/api/handlers"
	"github.com/grouphub/user-group-services/api/middleware"
	"github.com/grouphub/user-group-services/api/services"
	"github.com/grouphub/user-group-services/internal/password"
	"github.com/grouphub/user-group-services/internal/token"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config, initialize the database and set up logging
		commonSetUp()
		defer membershipDB.Close()

		r := mux.NewRouter()

		service := &services.Service{
			Config:   appCfg,
			DB:       membershipDB,
			Hasher:   password.NewBcryptHasher(),
			NewToken: token.New,
		}

		api := r.PathPrefix(appCfg.BasePath).Subrouter()
		api.Use(middleware.WithLogger)

		// Group routes
		api.HandleFunc("/groups", handlers.GetGroups(service)).Methods(http.MethodGet)
		api.HandleFunc("/group", handlers.CreateGroup(service)).Methods(http.MethodPost)
		api.HandleFunc("/group/add_user", handlers.AddMembership(service)).Methods(http.MethodPost)
		api.HandleFunc("/group/remove_user", handlers.RemoveMembership(service)).Methods(http.MethodDelete)
		api.HandleFunc("/group/{groupId}", handlers.GetGroup(service)).Methods(http.MethodGet)
		api.HandleFunc("/group/{groupId}", handlers.UpdateGroup(service)).Methods(http.MethodPut)
		api.HandleFunc("/group/{groupId}", handlers.DeleteGroup(service)).Methods(http.MethodDelete)

		// User routes. Only who_am_i needs the caller's identity.
		requireToken := middleware.RequireToken(membershipDB)
		api.HandleFunc("/users", handlers.GetUsers(service)).Methods(http.MethodGet)
		api.Handle("/user/who_am_i", requireToken(handlers.WhoAmI(service))).Methods(http.MethodGet)
		api.HandleFunc("/user", handlers.CreateUser(service)).Methods(http.MethodPost)
		api.HandleFunc("/user/{userId}", handlers.GetUser(service)).Methods(http.MethodGet)
		api.HandleFunc("/user/{userId}", handlers.UpdateUser(service)).Methods(http.MethodPut)
		api.HandleFunc("/user/{userId}", handlers.DeleteUser(service)).Methods(http.MethodDelete)

		log.Info().Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port), r); err != nil {
			log.Error().Err(err).Msg("could not start server")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 8080, "port to run the server on")
}
