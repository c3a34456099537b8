package actioncontext

const pushEvent = `{
  "ref": "refs/heads/main",
  "compare": "https://github.com/org/repo/compare/1a2b3c4d5e6f...7a8b9c0d1e2f",
  "repository": {
    "url": "https://github.com/org/repo",
    "full_name": "org/repo"
  },
  "head_commit": {
    "url": "https://github.com/org/repo/commit/7a8b9c0d1e2f3a4b",
    "message": "Initial commit"
  },
  "commits": [
    {
      "url": "https://github.com/org/repo/commit/1a2b3c4d5e6f",
      "message": "older commit"
    }
  ]
}`

const commitListEvent = `{
  "repository": {
    "url": "https://github.com/org/repo",
    "full_name": "org/repo"
  },
  "commits": [
    {
      "url": "https://github.com/org/repo/commit/aaaa",
      "message": "first"
    },
    {
      "url": "https://github.com/org/repo/commit/bbbb",
      "message": "second"
    }
  ]
}`

const dispatchEvent = `{
  "inputs": {},
  "repository": {
    "url": "https://github.com/org/repo",
    "full_name": "org/repo"
  }
}`
