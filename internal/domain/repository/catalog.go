package repository

import (
	"github.com/gosimple/slug"

	"algoarena/internal/domain/model"
)

// demoCatalog returns the fixed problem set served by the demo. IDs are
// dense starting at 1 and the order here is the order the list endpoint
// returns.
func demoCatalog() []model.Problem {
	problems := []model.Problem{
		{
			ID:           1,
			Title:        "Two Sum",
			Difficulty:   model.DifficultyEasy,
			Tags:         []string{"array", "hash-table"},
			SolvedCount:  15420,
			SuccessRate:  72,
			Description:  "Given an array of integers nums and an integer target, return the indices of the two numbers that add up to target. You may assume that each input has exactly one solution, and you may not use the same element twice. You can return the answer in any order.",
			InputFormat:  "The first line contains the array nums as space-separated integers. The second line contains the integer target.",
			OutputFormat: "Two space-separated integers: the indices of the two numbers that add up to target, in ascending order.",
			Constraints:  "2 <= nums.length <= 10^4\n-10^9 <= nums[i] <= 10^9\n-10^9 <= target <= 10^9\nExactly one valid answer exists.",
			Examples: []model.Example{
				{
					Input:       "nums = [2,7,11,15], target = 9",
					Output:      "[0,1]",
					Explanation: "nums[0] + nums[1] == 9, so we return [0, 1].",
				},
				{
					Input:  "nums = [3,2,4], target = 6",
					Output: "[1,2]",
				},
			},
			Hints: []string{
				"A brute force approach checks every pair, but that is O(n^2).",
				"Can you trade space for time? Think about what you need to find for each element.",
				"Store each value's index in a hash map and look up target - nums[i] as you iterate.",
			},
			StarterCode: "function twoSum(nums, target) {\n  // Write your code here\n}\n",
			WorkingSolution: "function twoSum(nums, target) {\n  const seen = new Map();\n  for (let i = 0; i < nums.length; i++) {\n    const complement = target - nums[i];\n    if (seen.has(complement)) {\n      return [seen.get(complement), i];\n    }\n    seen.set(nums[i], i);\n  }\n  return [];\n}\n",
		},
		{
			ID:           2,
			Title:        "Longest Substring Without Repeating Characters",
			Difficulty:   model.DifficultyMedium,
			Tags:         []string{"string", "sliding-window", "hash-table"},
			SolvedCount:  9873,
			SuccessRate:  54,
			Description:  "Given a string s, find the length of the longest substring without repeating characters. A substring is a contiguous sequence of characters within the string.",
			InputFormat:  "A single line containing the string s.",
			OutputFormat: "A single integer: the length of the longest substring of s without repeating characters.",
			Constraints:  "0 <= s.length <= 5 * 10^4\ns consists of English letters, digits, symbols and spaces.",
			Examples: []model.Example{
				{
					Input:       "s = \"abcabcbb\"",
					Output:      "3",
					Explanation: "The answer is \"abc\", with a length of 3.",
				},
				{
					Input:       "s = \"bbbbb\"",
					Output:      "1",
					Explanation: "The answer is \"b\", with a length of 1.",
				},
			},
			Hints: []string{
				"Generating every substring and checking it is too slow for the upper bound.",
				"Use a sliding window: grow the right edge and shrink the left edge when you see a repeat.",
				"Keep the last index of each character so the left edge can jump instead of stepping.",
			},
			StarterCode: "function lengthOfLongestSubstring(s) {\n  // Write your code here\n}\n",
			WorkingSolution: "function lengthOfLongestSubstring(s) {\n  const lastSeen = new Map();\n  let best = 0;\n  let left = 0;\n  for (let right = 0; right < s.length; right++) {\n    const ch = s[right];\n    if (lastSeen.has(ch) && lastSeen.get(ch) >= left) {\n      left = lastSeen.get(ch) + 1;\n    }\n    lastSeen.set(ch, right);\n    best = Math.max(best, right - left + 1);\n  }\n  return best;\n}\n",
		},
		{
			ID:           3,
			Title:        "Median of Two Sorted Arrays",
			Difficulty:   model.DifficultyHard,
			Tags:         []string{"array", "binary-search", "divide-and-conquer"},
			SolvedCount:  3251,
			SuccessRate:  31,
			Description:  "Given two sorted arrays nums1 and nums2 of size m and n respectively, return the median of the two sorted arrays. The overall run time complexity should be O(log(m+n)).",
			InputFormat:  "The first line contains the sorted array nums1 as space-separated integers. The second line contains the sorted array nums2.",
			OutputFormat: "A single number: the median of the combined arrays, printed with up to five decimal places.",
			Constraints:  "0 <= m, n <= 1000\n1 <= m + n <= 2000\n-10^6 <= nums1[i], nums2[i] <= 10^6",
			Examples: []model.Example{
				{
					Input:       "nums1 = [1,3], nums2 = [2]",
					Output:      "2.00000",
					Explanation: "The merged array is [1,2,3] and its median is 2.",
				},
				{
					Input:       "nums1 = [1,2], nums2 = [3,4]",
					Output:      "2.50000",
					Explanation: "The merged array is [1,2,3,4] and its median is (2 + 3) / 2 = 2.5.",
				},
			},
			Hints: []string{
				"Merging both arrays works but is O(m+n), not O(log(m+n)).",
				"The median splits the combined array into two equal halves. Can you binary search for that split?",
				"Binary search the partition point in the smaller array; the partition in the other array follows from it.",
			},
			StarterCode: "function findMedianSortedArrays(nums1, nums2) {\n  // Write your code here\n}\n",
			WorkingSolution: "function findMedianSortedArrays(nums1, nums2) {\n  if (nums1.length > nums2.length) {\n    return findMedianSortedArrays(nums2, nums1);\n  }\n  const m = nums1.length;\n  const n = nums2.length;\n  let lo = 0;\n  let hi = m;\n  while (lo <= hi) {\n    const i = (lo + hi) >> 1;\n    const j = ((m + n + 1) >> 1) - i;\n    const leftA = i === 0 ? -Infinity : nums1[i - 1];\n    const rightA = i === m ? Infinity : nums1[i];\n    const leftB = j === 0 ? -Infinity : nums2[j - 1];\n    const rightB = j === n ? Infinity : nums2[j];\n    if (leftA <= rightB && leftB <= rightA) {\n      if ((m + n) % 2 === 1) {\n        return Math.max(leftA, leftB);\n      }\n      return (Math.max(leftA, leftB) + Math.min(rightA, rightB)) / 2;\n    }\n    if (leftA > rightB) {\n      hi = i - 1;\n    } else {\n      lo = i + 1;\n    }\n  }\n  return 0;\n}\n",
		},
	}

	for i := range problems {
		problems[i].Slug = slug.Make(problems[i].Title)
	}
	return problems
}
