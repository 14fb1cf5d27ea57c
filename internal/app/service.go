package app

import (
	"extbuild/internal/adapters"
	"extbuild/internal/ports"
)

type Service struct {
	PkgConfig   ports.PkgConfigPort
	VCS         ports.VCSPort
	VersionFile ports.VersionFilePort
	PlanWriter  ports.PlanWriterPort
}

func NewService() Service {
	return Service{
		PkgConfig:   adapters.NewPkgConfigExecAdapter(),
		VCS:         adapters.NewGitCLIAdapter(""),
		VersionFile: adapters.NewVersionFileAdapter(),
		PlanWriter:  adapters.NewPlanFileAdapter(),
	}
}
