package service

import (
	"github.com/deppfellow/go-posts/internal/lib/job"
	"github.com/deppfellow/go-posts/internal/repository"
	"github.com/deppfellow/go-posts/internal/server"
)

type Services struct {
	Post *PostService
	Mail *MailService
	Job  *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Post: NewPostService(repos.Post),
		Mail: NewMailService(s.Config.Mail, s.Job),
		Job:  s.Job,
	}, nil
}
