// Package project discovers the structure of the project being exported:
// its name, source directories, exportable modules, core files, and the
// directory tree shown in export headers.
package project
