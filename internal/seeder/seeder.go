// Package seeder loads development fixtures so a fresh instance has jobs to
// browse and skills to pick from. It never runs against a populated store.
package seeder

import (
	"context"
	"errors"
	"log"

	"upfreelance/internal/domain/job"
	"upfreelance/internal/domain/skill"
	"upfreelance/internal/storage"
)

func strPtr(s string) *string { return &s }

var seedJobs = []job.Insert{
	{
		Title:       "React Developer for E-commerce Platform",
		Description: "Looking for an experienced React developer to help build our e-commerce platform. Strong knowledge of React, Redux, and responsive design required. The ideal candidate will have experience with payment gateway integration and building shopping cart functionality.",
		PayRate:     "$30-40/hr",
		Duration:    strPtr("3-6 months"),
		Location:    strPtr("Remote"),
		Skills:      []string{"React", "Redux", "E-commerce", "JavaScript", "REST API"},
	},
	{
		Title:       "Full Stack Developer with Python Experience",
		Description: "We need a full-stack developer who can work with React on the frontend and Python on the backend for our data analytics dashboard. The project involves creating data visualizations, implementing user authentication, and building a RESTful API.",
		PayRate:     "$25-35/hr",
		Duration:    strPtr("1-3 months"),
		Location:    strPtr("Remote"),
		Skills:      []string{"React", "Python", "Django", "RESTful API", "Data Visualization"},
	},
	{
		Title:       "Frontend Developer for SaaS Application",
		Description: "Looking for a frontend developer to help build our SaaS dashboard. Experience with React, Tailwind CSS, and responsive design is required. Knowledge of chart libraries and data visualization is a plus.",
		PayRate:     "$20-30/hr",
		Duration:    strPtr("2-4 months"),
		Location:    strPtr("Remote"),
		Skills:      []string{"React", "Tailwind CSS", "JavaScript", "UI/UX", "SaaS"},
	},
}

var seedSkills = []string{
	"React", "JavaScript", "TypeScript", "Python", "Django",
	"Node.js", "REST API", "Redux", "Tailwind CSS", "PostgreSQL",
}

// Run seeds jobs and skills when the store holds no jobs yet. Re-running
// against a seeded store is a no-op.
func Run(ctx context.Context, store storage.Store, logger *log.Logger) error {
	existing, err := store.ListJobs(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, in := range seedJobs {
		if _, err := store.CreateJob(ctx, in); err != nil {
			return err
		}
	}

	for _, name := range seedSkills {
		if _, err := store.CreateSkill(ctx, name); err != nil {
			if errors.Is(err, skill.ErrNameTaken) {
				continue
			}
			return err
		}
	}

	if logger != nil {
		logger.Printf("seeded %d jobs and %d skills", len(seedJobs), len(seedSkills))
	}
	return nil
}
