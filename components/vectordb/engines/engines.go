package engines

import (
	"github.com/bububa/agent-toolkit/components/vectordb/engines/chromem"
	"github.com/bububa/agent-toolkit/components/vectordb/engines/memory"
)

var (
	FromChromem = chromem.New
	FromMemory  = memory.New
)
