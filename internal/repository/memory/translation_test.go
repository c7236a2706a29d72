package memory

import (
	"testing"

	"github.com/RMahshie/freqplan/internal/repository/repotest"
)

func TestTranslationRepository(t *testing.T) {
	repotest.RunTranslationRepository(t, NewTranslationRepository())
}
