package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	t.Run("registers maintenance commands", func(t *testing.T) {
		cmd := rootCmd()
		var names []string
		for _, sub := range cmd.Commands() {
			names = append(names, sub.Name())
		}
		require.ElementsMatch(t, []string{"migrate", "load-users", "create-superuser"}, names)
	})
	t.Run("load-users needs a workbook", func(t *testing.T) {
		cmd := rootCmd()
		cmd.SetArgs([]string{"load-users"})
		require.Error(t, cmd.Execute())
	})
	t.Run("create-superuser needs credentials", func(t *testing.T) {
		cmd := rootCmd()
		cmd.SetArgs([]string{"create-superuser", "--username", "admin"})
		err := cmd.Execute()
		require.Error(t, err)
		require.Contains(t, err.Error(), "password")
	})
}
