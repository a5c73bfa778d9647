package i18n

import (
	"testing"

	"github.com/Amit12200412/ai-legal-assistant/models"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	assert.Equal(t, "Login", Lookup(models.LangEnglish, "login"))
	assert.Equal(t, "लॉगिन", Lookup(models.LangHindi, "login"))
	assert.Equal(t, "विश्लेषण करा", Lookup(models.LangMarathi, "analyze"))
}

func TestLookupFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "Login", Lookup("fr", "login"))
}

func TestLookupFallsBackToKey(t *testing.T) {
	assert.Equal(t, "no_such_key", Lookup(models.LangEnglish, "no_such_key"))
	assert.Equal(t, "no_such_key", Lookup("fr", "no_such_key"))
}

func TestTablesCoverSameKeys(t *testing.T) {
	english := Table(models.LangEnglish)
	for _, lang := range []models.Language{models.LangHindi, models.LangMarathi} {
		table := Table(lang)
		assert.Len(t, table, len(english), "table for %s", lang)
		for key := range english {
			assert.Contains(t, table, key, "table for %s", lang)
		}
	}
}

func TestTableUnknownLanguageReturnsEnglish(t *testing.T) {
	assert.Equal(t, Table(models.LangEnglish), Table("de"))
}

func TestTableReturnsCopy(t *testing.T) {
	table := Table(models.LangEnglish)
	table["login"] = "mutated"
	assert.Equal(t, "Login", Lookup(models.LangEnglish, "login"))
}
