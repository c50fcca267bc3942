// Package verify reconciles the images a project's script asks for with the
// files present in its images folder.
package verify
