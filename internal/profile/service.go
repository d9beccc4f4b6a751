package profile

import (
	"booktracker/internal/readinglist"
	"booktracker/internal/user"
)

type Service struct {
	userService        *user.Service
	readingListService *readinglist.Service
}

func NewService(userService *user.Service, readingListService *readinglist.Service) *Service {
	return &Service{
		userService:        userService,
		readingListService: readingListService,
	}
}

func (s *Service) GetOwnProfile(username string) (Profile, error) {
	u, ok, err := s.userService.Lookup(username)
	if err != nil {
		return Profile{}, err
	}
	if !ok {
		return Profile{}, user.ErrInvalidCredentials
	}

	stats, err := s.GetStats(username)
	if err != nil {
		return Profile{}, err
	}
	return Profile{User: u, Stats: stats}, nil
}

func (s *Service) GetStats(username string) (Stats, error) {
	entries, err := s.readingListService.List(username)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(entries), nil
}
