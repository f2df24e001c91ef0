/*
Package conf wraps kingpin to provide:
- flags that can also be set from environment variables with the OCNDIAG_ prefix,
- config dumps as a sourceable shell file or YAML document,
- ability to extract current values of registered flags (defined with wrappers),
- SliceFlag for comma separated lists,
- predefined flag for logging (logrus integration),
- an explicit Config value handed to every plot instead of ambient environment lookups.
*/
package conf
