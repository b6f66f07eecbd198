package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnmgt/cvsskit/cvss"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\nconvert_target: \"4.0\"\n"), 0644))

	c, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "json", c.Format)
	assert.Equal(t, "4.0", c.ConvertTarget)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(":\n\t- broken"), 0644))
	_, err = loadConfig(bad)
	assert.Error(t, err)
}

func TestBuildVectorReport(t *testing.T) {
	m, err := cvss.Parse("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H")
	require.NoError(t, err)

	report := buildVectorReport(m)
	assert.Equal(t, "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", report.Vector)
	assert.Equal(t, "3.1", report.Version)
	assert.InDelta(t, 9.8, report.BaseScore, 1e-9)
	assert.Equal(t, "CRITICAL", report.SeverityRating)
	assert.Equal(t, "H", report.Metrics["C"])
}

func TestReadAdvisoriesShapes(t *testing.T) {
	dir := t.TempDir()

	single := filepath.Join(dir, "one.json")
	require.NoError(t, os.WriteFile(single, []byte(`{"id":"CVE-2024-1","severity":[{"type":"CVSS_V3","score":"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"}]}`), 0644))

	vulns, wasSingle, err := readAdvisories(single)
	require.NoError(t, err)
	assert.True(t, wasSingle)
	require.Len(t, vulns, 1)
	assert.Equal(t, "CVE-2024-1", vulns[0].ID)

	array := filepath.Join(dir, "many.json")
	require.NoError(t, os.WriteFile(array, []byte(`[{"id":"CVE-2024-1"},{"id":"CVE-2024-2"}]`), 0644))

	vulns, wasSingle, err = readAdvisories(array)
	require.NoError(t, err)
	assert.False(t, wasSingle)
	assert.Len(t, vulns, 2)

	garbage := filepath.Join(dir, "garbage.json")
	require.NoError(t, os.WriteFile(garbage, []byte(`"just a string"`), 0644))
	_, _, err = readAdvisories(garbage)
	assert.Error(t, err)
}
