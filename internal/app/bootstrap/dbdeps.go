// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/whopinsights/internal/app/store/members"
	eng "github.com/dalemusser/whopinsights/internal/app/system/engagement"
	"github.com/dalemusser/whopinsights/internal/app/system/whop"
)

// DBDeps holds the back-end dependencies for the app. There is no database;
// the upstream membership platform is the only data source.
type DBDeps struct {
	Whop       *whop.Client
	Members    members.Source
	MemberMode members.Mode // resolved, never ModeAuto
	Evaluator  *eng.Evaluator
	Strategy   eng.Strategy
}
