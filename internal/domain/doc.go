// Package domain contains the core business entities of the application:
// workouts, progress entries, and users. It represents the heart of the
// system, independent of any specific infrastructure or delivery mechanism.
package domain
