package app

import (
	"github.com/specialistvlad/graphstep/internal/registry"
	"github.com/specialistvlad/graphstep/modules/logrender"
	prnt "github.com/specialistvlad/graphstep/modules/print"
	"github.com/specialistvlad/graphstep/modules/socketio"
	"github.com/specialistvlad/graphstep/modules/terminal"
)

// coreModules are registered when NewApp is given no modules.
var coreModules = []registry.Module{
	&terminal.Module{},
	&prnt.Module{},
	&logrender.Module{},
	&socketio.Module{},
}

// defaultRenderer is used when neither the graph file nor the flags pick one.
const defaultRenderer = terminal.Name
