package cleanup

import "log/slog"

type Job struct {
	Name string
	F    func() error
}

var (
	jobs []*Job
)

func Register(j *Job) {
	jobs = append(jobs, j)
}

// CleanUp runs registered jobs in registration order. Errors are logged,
// not returned, so one failing job doesn't stop the rest of the shutdown.
func CleanUp() {
	for _, j := range jobs {
		slog.Info("cleanup job started", slog.String("job", j.Name))
		err := j.F()
		if err != nil {
			slog.Error("cleanup job failed", slog.String("job", j.Name), slog.String("error", err.Error()))
		} else {
			slog.Info("cleanup job finished", slog.String("job", j.Name))
		}
	}
}
