package main

import (
	"errors"
	"fmt"
	"os"

	"booktracker/internal/catalog"
	"booktracker/internal/config"
	"booktracker/internal/profile"
	"booktracker/internal/readinglist"
	"booktracker/internal/session"
	"booktracker/internal/user"
)

var (
	errNotLoggedIn = errors.New("not logged in; run `bookctl login` first")
	errAdminOnly   = errors.New("this command requires the admin account")
)

// env holds the stores and services one command invocation works on.
type env struct {
	cfg *config.Config

	marker       *session.Marker
	users        *user.Service
	catalogStore *catalog.FileStore
	catalog      *catalog.Service
	libraries    *readinglist.Registry
	readingList  *readinglist.Service
	profile      *profile.Service
}

func newEnv(cfg *config.Config) (*env, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	catalogStore := catalog.NewFileStore(cfg.CatalogPath())
	if err := catalogStore.Load(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	users := user.NewService(user.NewFileStore(cfg.UsersPath()), cfg.AdminUsername, cfg.AdminPassword)
	libraries := readinglist.NewRegistry(cfg.DataDir)
	readingList := readinglist.NewService(libraries, catalogStore)

	return &env{
		cfg:          cfg,
		marker:       session.NewMarker(cfg.SessionPath()),
		users:        users,
		catalogStore: catalogStore,
		catalog:      catalog.NewService(catalogStore),
		libraries:    libraries,
		readingList:  readingList,
		profile:      profile.NewService(users, readingList),
	}, nil
}

// currentUser resolves the session marker to a known account.
func (e *env) currentUser() (user.User, error) {
	name, ok, err := e.marker.Current()
	if err != nil {
		return user.User{}, err
	}
	if !ok {
		return user.User{}, errNotLoggedIn
	}
	u, ok, err := e.users.Lookup(name)
	if err != nil {
		return user.User{}, err
	}
	if !ok {
		return user.User{}, errNotLoggedIn
	}
	return u, nil
}

func (e *env) requireAdmin() (user.User, error) {
	u, err := e.currentUser()
	if err != nil {
		return user.User{}, err
	}
	if !u.IsAdmin() {
		return user.User{}, errAdminOnly
	}
	return u, nil
}

// close saves every personal library that was opened.
func (e *env) close() error {
	return e.libraries.SaveAll()
}
