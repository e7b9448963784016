package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath      string
	DBPath          string
	DBExists        bool // true = Found, false = Not Found
	DefaultCurrency string
	Timezone        string
	AppDataDir      string
	Notifier        string
	Limits          [][2]string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Default Currency", data.DefaultCurrency},
		{"Timezone", data.Timezone},
		{"Notifications", data.Notifier},
		{"AppData Directory", data.AppDataDir},
	}
	for _, l := range data.Limits {
		tableData = append(tableData, []string{l[0], l[1]})
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
