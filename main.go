// Command patchflow works with RHESSys flow tables and patch rasters.
package main

import "github.com/rhessysweb/patchflow/cmd"

func main() {
	cmd.Execute()
}
