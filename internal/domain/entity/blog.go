// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Blog is a single published post. A blog may reference the user that wrote
// it through CreatorID; posts imported from legacy data have no creator.
type Blog struct {
	ID        uint      // Auto-assigned numeric identifier, immutable after creation.
	Title     string    // The post title.
	Body      string    // The post content.
	CreatorID *uint     // Optional reference to the owning User. Nil when the post has no author.
	Creator   *User     // The owning user, populated on reads for serialization. Nil when CreatorID is nil.
	CreatedAt time.Time // Timestamp of when the post was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
