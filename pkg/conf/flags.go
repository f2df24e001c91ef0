package conf

import "time"

// Flags shared by every plot. Names follow the variables of the diagnostics
// environment they replace (WORKDIR, TOOLPATH, NCLPATH, TS_CPL, YEAR0, YEAR1).
var (
	WorkDirFlag      = NewStringFlag("work_dir", "Working directory holding cpl.log.* files and receiving plots", ".")
	ToolPathFlag     = NewStringFlag("tool_path", "Directory with the awk scripts used to parse coupler logs", "./tool_lib")
	NCLPathFlag      = NewStringFlag("ncl_path", "Directory with the NCL plotting scripts", "./ncl_lib")
	TemplatePathFlag = NewStringFlag("template_path", "Directory with HTML templates; embedded templates are used when empty", "")
	ImageFormatFlag  = NewStringFlag("image_format", "Extension of converted plot images", "png")
	TSCplFlag        = NewStringFlag("ts_cpl", "Coupler log version (6, 7 or empty for 7b)", "")
	Year0Flag        = NewIntFlag("year0", "First model year of the coupler log time series", 1)
	Year1Flag        = NewIntFlag("year1", "Last model year of the coupler log time series", 1)
	ToolTimeoutFlag  = NewDurationFlag("tool_timeout", "Maximum run time of a single external tool", 10*time.Minute)
	PlotsFlag        = NewSliceFlag("plots", "Plots to generate, comma separated short names", "CPLLOG_TS", "DWBC")
)
